package notify

import (
	"fmt"
	"path/filepath"
	"strings"
)

// notificationScript builds the AppleScript that posts n through
// Notification Center.
func notificationScript(n Notification) string {
	return fmt.Sprintf("display notification %s with title %s subtitle %s",
		quoteAppleScript(n.Body), quoteAppleScript(n.Title), quoteAppleScript(AppName))
}

// quoteAppleScript returns s as an AppleScript string literal. AppleScript
// only knows the \\ and \" escapes, so every other rune passes through as is.
func quoteAppleScript(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// toastScript shows a ToastText02 toast. Arguments: title, body, app id.
const toastScript = `
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$xml = New-Object Windows.Data.Xml.Dom.XmlDocument
$xml.LoadXml('<toast><visual><binding template="ToastText02"><text id="1">%[1]s</text><text id="2">%[2]s</text></binding></visual></toast>')
$toast = [Windows.UI.Notifications.ToastNotification]::new($xml)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('%[3]s').Show($toast)
`

// soundScript plays a wav file synchronously.
const soundScript = `
$player = New-Object System.Media.SoundPlayer
$player.SoundLocation = '%s'
$player.PlaySync()
`

// beepScript is the fallback when no sound file is usable.
const beepScript = "[Console]::Beep(880, 300)"

// toastCommand builds the PowerShell toast for n.
func toastCommand(n Notification) string {
	return fmt.Sprintf(toastScript, escapeToastText(n.Title), escapeToastText(n.Body), AppName)
}

// soundCommand builds the PowerShell that plays file. SoundPlayer only
// understands WAV, so anything else beeps instead.
func soundCommand(file string) (script string, beep bool) {
	if file == "" || !strings.EqualFold(filepath.Ext(file), ".wav") {
		return beepScript, true
	}
	return fmt.Sprintf(soundScript, escapeForPowerShell(file)), false
}

// escapeToastText makes s safe inside the toast XML, which is itself inside
// a single-quoted PowerShell string.
func escapeToastText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return escapeForPowerShell(r.Replace(s))
}

// escapeForPowerShell escapes s for a single-quoted PowerShell string.
func escapeForPowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
