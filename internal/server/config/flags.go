package config

import (
	"flag"
	"os"
	"time"

	"github.com/photohub/photohub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   MongoDB connection URI
//	-n string   MongoDB database name
//	-s string   JWT HMAC secret key
//	-t int      session token validity, hours
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string   S3 public base URL for stored objects
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-s", "-t", "-u", "-p", "-b", "-g", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseURI, "d", config.DatabaseURI, "database URI")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token_validity_duration (in hours)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3PublicBaseURL, "l", config.S3PublicBaseURL, "S3 public base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Hour
}
