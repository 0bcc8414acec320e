package buildinfo

const Graffiti = "  __ _  ___  ___ (_)_ __   __| | _____  __\n / _` |/ _ \\/ _ \\| | '_ \\ / _` |/ _ \\ \\/ /\n| (_| |  __/ (_) | | | | | (_| |  __/>  < \n \\__, |\\___|\\___/|_|_| |_|\\__,_|\\___/_/\\_\\\n |___/\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "geoindex"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
