package tapir

// Version is the module version reported by the CLI. Overridable at build
// time:
//
//	go build -ldflags "-X github.com/tapirlabs/tapir.Version=v1.2.3"
var Version = "0.1.0"
