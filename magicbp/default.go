package magicbp

// Default is the process-wide Generator used by the package level functions.
//
// It uses the default Config, and opens DefaultDevicePath on first use.
var Default = New(Config{})

// Initialize initializes Default.
//
// See Generator.Initialize for more details.
func Initialize() {
	Default.Initialize()
}

// NextMagic returns the next magic number from Default.
//
// See Generator.NextMagic for more details.
func NextMagic() uint32 {
	return Default.NextMagic()
}
