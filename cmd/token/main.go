// Command token signs an access token for a principal. It is used to
// bootstrap the first admin and for local testing; production tokens come
// from the identity provider.
//
// Usage:
//
//	token --role=ADMIN [--id=<uuid>]
//
// Reads the same auth configuration as the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/auth"
	"github.com/heartmarshall/qreview-backend/internal/config"
	"github.com/heartmarshall/qreview-backend/internal/domain"
)

func main() {
	role := flag.String("role", "", "principal role: CREATOR, REVIEWER, EXPERT or ADMIN")
	id := flag.String("id", "", "principal UUID (random when empty)")
	flag.Parse()

	if *role == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --role=ADMIN [--id=<uuid>]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	principalID := uuid.New()
	if *id != "" {
		principalID, err = uuid.Parse(*id)
		if err != nil {
			log.Fatalf("parse id: %v", err)
		}
	}

	p, err := domain.NewPrincipal(domain.PrincipalKind(strings.ToUpper(*role)), principalID)
	if err != nil {
		log.Fatalf("principal: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).GenerateAccessToken(p)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "principal %s\n", p)
	fmt.Println(token)
}
