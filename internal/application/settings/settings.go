// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up        string `yaml:"up" kong:"help='Up key',default='k'"`
	Down      string `yaml:"down" kong:"help='Down key',default='j'"`
	Left      string `yaml:"left" kong:"help='Left/Back key',default='h'"`
	Right     string `yaml:"right" kong:"help='Right/Enter key',default='l'"`
	UpPage    string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage  string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Open      string `yaml:"open" kong:"help='Open key',default='enter'"`
	Back      string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Refresh   string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	Search    string `yaml:"search" kong:"help='Search key',default='/'"`
	AddToCart string `yaml:"add_to_cart" kong:"help='Add to cart key',default='c'"`
	Increase  string `yaml:"increase" kong:"help='Increase quantity key',default='+'"`
	Decrease  string `yaml:"decrease" kong:"help='Decrease quantity key',default='-'"`
	Remove    string `yaml:"remove" kong:"help='Remove cart line key',default='x'"`
	ClearCart string `yaml:"clear_cart" kong:"help='Clear cart key',default='X'"`
	Checkout  string `yaml:"checkout" kong:"help='Checkout key',default='p'"`
	Received  string `yaml:"received" kong:"help='Mark order received key',default='m'"`
	Login     string `yaml:"login" kong:"help='Login/Logout key',default='L'"`
	OpenImage string `yaml:"open_image" kong:"help='Open remote image key',default='o'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	MenuName  string `yaml:"menu_name" kong:"help='Menu entry color',default='244'"`
	Highlight string `yaml:"highlight" kong:"help='Highlight color',default='148'"`
}

// APIConfig defines how the shop API is reached.
type APIConfig struct {
	BaseURL           string  `yaml:"base_url" kong:"name='base-url',help='Shop API base URL',default='https://e-comemerse-sanita-production.up.railway.app/'"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='15'"`
	UserAgent         string  `yaml:"user_agent" kong:"help='User-Agent header',default='Sanita/1.0'"`
	RequestsPerSecond float64 `yaml:"requests_per_second" kong:"help='Client-side request limit (0 = unlimited)',default='0'"`
}

// Timeout returns the request timeout, or zero when unset.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Settings represents the application configuration.
type Settings struct {
	API           APIConfig    `yaml:"api" kong:"embed,prefix='api.'"`
	KeyMap        KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme         ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	FeaturedCount int          `yaml:"featured_count" kong:"help='Featured plants on the home screen',default='4'"`
	LogFile       string       `yaml:"log_file" kong:"help='Log file path'"`
	LogLevel      string       `yaml:"log_level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}
