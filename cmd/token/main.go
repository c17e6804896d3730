// token emite un Bearer token de operador con la configuración AUTH_* del entorno.
//
// Uso: go run ./cmd/token <operador>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/jwt"
)

func main() {
	if len(os.Args) < 2 || strings.TrimSpace(os.Args[1]) == "" {
		fmt.Fprintln(os.Stderr, "uso: token <operador>")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.Auth.Enabled() {
		fmt.Fprintln(os.Stderr, "AUTH_SECRET no definido: las rutas están abiertas y no se necesita token")
		os.Exit(1)
	}
	token, err := jwt.Generate(cfg.Auth.Secret, strings.TrimSpace(os.Args[1]), cfg.Auth.Issuer, cfg.Auth.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Firmar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
