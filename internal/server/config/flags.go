package config

import (
	"flag"
	"os"
	"time"

	"github.com/groovestream/users/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   credential store DSN (postgres://, mongodb://, memory:)
//	-m string   Mongo database name
//	-s string   JWT HMAC secret key
//	-t int      session token validity, hours
//	-w int      bcrypt work factor
//
// os.Args is first filtered to only the flags handled here using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-m", "-s", "-t", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "credential store DSN")
	fs.StringVar(&config.MongoDBName, "m", config.MongoDBName, "mongo database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt work factor")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Hours()), "token validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only overwrite TokenValidity when -t was actually passed; round-tripping
	// through whole hours would truncate a sub-hour value set by the env or
	// JSON layers.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidity = time.Duration(*tokenValidity) * time.Hour
		}
	})
}
