package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconDatabase = "\uf1c0" // database
	IconConfig   = "\ue615" // config
	IconLogs     = "\uf0f6" // file-text

	IconSun  = "\uf185" // sun
	IconMoon = "\uf186" // moon
	IconLock = "\uf023" // lock
)
