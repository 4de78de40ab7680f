package version

// BuildVersion is set at build time
var BuildVersion = "change-me"
