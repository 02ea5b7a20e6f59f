package pkg

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/text"
)

// InitLog sends log entries to the file at dest, or to stderr when dest is
// empty, and returns a logger tagged with component
func InitLog(dest, component string, debug bool) *log.Entry {
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	if dest == "" {
		log.SetHandler(cli.New(os.Stderr))
		return log.WithField("component", component)
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.SetHandler(cli.New(os.Stderr))
		log.WithError(err).WithField("path", dest).Fatal("error opening log file")
	}
	log.SetHandler(text.New(f))
	return log.WithField("component", component)
}
