package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Output        string `mapstructure:"output"`
	OutFile       string `mapstructure:"out_file"`
	Pretty        bool   `mapstructure:"pretty"`
	OnError       string `mapstructure:"on_error"`
	Normalize     bool   `mapstructure:"normalize"`
	Trace         string `mapstructure:"trace"`
	PreviewLines  int    `mapstructure:"preview_lines"`
	ColorType     string `mapstructure:"color_type"`
	ColorText     string `mapstructure:"color_text"`
	ColorHTML     string `mapstructure:"color_html"`
	ColorBorder   string `mapstructure:"color_border"`
	ColorCursor   string `mapstructure:"color_cursor"`
	ColorSelected string `mapstructure:"color_selected"`
	ColorDim      string `mapstructure:"color_dim"`
	ColorError    string `mapstructure:"color_error"`
}

// Error handling modes for blocks that fail to render
const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"
)

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	setDefaults()

	viper.SetConfigName("mdhtml")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "mdhtml"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MDHTML")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

func setDefaults() {
	viper.SetDefault("output", "print")
	viper.SetDefault("out_file", "")
	viper.SetDefault("pretty", false)
	viper.SetDefault("on_error", OnErrorAbort)
	viper.SetDefault("normalize", false)
	viper.SetDefault("trace", "")
	viper.SetDefault("preview_lines", 8)
	viper.SetDefault("color_type", "36")
	viper.SetDefault("color_text", "")
	viper.SetDefault("color_html", "32")
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_cursor", "212")
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_error", "31")
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetOutFile returns the output file path with tilde expansion
func GetOutFile() string {
	return expandTilde(viper.GetString("out_file"))
}

// GetPretty returns whether HTML output is indented
func GetPretty() bool {
	return viper.GetBool("pretty")
}

// GetOnError returns the error handling mode, abort or skip
func GetOnError() string {
	if viper.GetString("on_error") == OnErrorSkip {
		return OnErrorSkip
	}
	return OnErrorAbort
}

// GetNormalize returns whether input is NFC-normalized before parsing
func GetNormalize() bool {
	return viper.GetBool("normalize")
}

// GetTrace returns the trace level for the parser, empty when tracing is off
func GetTrace() string {
	return viper.GetString("trace")
}

// GetPreviewLines returns the height of the preview pane
func GetPreviewLines() int {
	if n := viper.GetInt("preview_lines"); n > 0 {
		return n
	}
	return 8
}

// GetColorType returns ANSI color code for block types
func GetColorType() string {
	return viper.GetString("color_type")
}

// GetColorText returns ANSI color code for block text
func GetColorText() string {
	return viper.GetString("color_text")
}

// GetColorHTML returns ANSI color code for rendered HTML
func GetColorHTML() string {
	return viper.GetString("color_html")
}

// GetColorBorder returns the color for borders and dividers
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorCursor returns the color for the cursor marker
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the background color of the selected row
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColorDim returns the color for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorError returns ANSI color code for blocks that failed to render
func GetColorError() string {
	return viper.GetString("color_error")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetOutFile sets the output file at runtime
func SetOutFile(path string) {
	viper.Set("out_file", path)
	C.OutFile = path
}

// SetPretty sets pretty printing at runtime
func SetPretty(pretty bool) {
	viper.Set("pretty", pretty)
	C.Pretty = pretty
}

// SetOnError sets the error handling mode at runtime
func SetOnError(mode string) {
	viper.Set("on_error", mode)
	C.OnError = mode
}

// SetNormalize sets input normalization at runtime
func SetNormalize(normalize bool) {
	viper.Set("normalize", normalize)
	C.Normalize = normalize
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
