// Command token issues a signed access token for calling the protected course routes.
//
//	go run ./cmd/token -subject registrar -role EDITOR
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yigit/courseportfolio/internal/bootstrap"
	"github.com/yigit/courseportfolio/internal/config"
	"github.com/yigit/courseportfolio/internal/pkg/auth"
	"github.com/yigit/courseportfolio/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", bootstrap.ConfigPath, "path to the YAML configuration file")
	envPath := flag.String("env", bootstrap.EnvPath, "path to an optional .env file")
	subject := flag.String("subject", "", "token subject, e.g. the user name")
	role := flag.String("role", auth.RoleEditor, "token role: EDITOR or VIEWER")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "token: -subject is required")
		flag.Usage()
		os.Exit(2)
	}

	normalizedRole := strings.ToUpper(*role)
	if normalizedRole != auth.RoleEditor && normalizedRole != auth.RoleViewer {
		fmt.Fprintf(os.Stderr, "token: unknown role %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath, *envPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	token, expiresAt, err := bootstrap.NewJWTService(cfg).GenerateToken(*subject, normalizedRole)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		os.Exit(1)
	}

	logger.Info().Str("subject", *subject).Str("role", normalizedRole).
		Str("expiresAt", expiresAt.Format(time.RFC3339)).Msg("Token issued")
	fmt.Println(token)
}
