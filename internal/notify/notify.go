package notify

// AppName is shown as the notification source where the OS supports it.
const AppName = "pomodoro"

// Output selects which channels a notification uses.
type Output string

const (
	OutputSound  Output = "sound"
	OutputVisual Output = "visual"
	OutputBoth   Output = "both"
)

// Visual reports whether o includes a desktop banner. Unknown values are
// treated as both.
func (o Output) Visual() bool { return o != OutputSound }

// Sound reports whether o includes an audible alert.
func (o Output) Sound() bool { return o != OutputVisual }

// Backend selects how notifications reach the OS.
type Backend string

const (
	// BackendNative shells out to the platform's own tools.
	BackendNative Backend = "native"
	// BackendBeeep uses the gen2brain/beeep library.
	BackendBeeep Backend = "beeep"
)

// Config holds the user's notification preferences.
type Config struct {
	Enabled   bool    `yaml:"enabled" json:"enabled"`
	Output    Output  `yaml:"output" json:"output"`
	SoundFile string  `yaml:"sound_file,omitempty" json:"sound_file"`
	Backend   Backend `yaml:"backend" json:"backend"`
}

// DefaultConfig enables banner and sound through the native backend.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Output:  OutputBoth,
		Backend: BackendNative,
	}
}

// Notification is a single message to deliver.
type Notification struct {
	Title string
	Body  string
}
