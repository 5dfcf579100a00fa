// migrate aplica el esquema (tablas + políticas RLS) con la credencial de servicio.
//
// Uso: go run ./cmd/migrate [up|down|version|force N]
// Requiere STORE_URL y STORE_SERVICE_KEY.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/Tahsilat-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tahsilat-api/pkg/config"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	if err := cfg.RequireStore(); err != nil {
		log.Fatal().Err(err).Msg("configuración incompleta")
	}

	m, err := postgres.NewMigrator(cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir migrador")
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		var v uint
		var dirty bool
		v, dirty, err = m.Version()
		if err == nil {
			fmt.Printf("version=%d dirty=%t\n", v, dirty)
		}
	case "force":
		if len(os.Args) < 3 {
			log.Fatal().Msg("uso: migrate force <version>")
		}
		var v int
		v, err = strconv.Atoi(os.Args[2])
		if err == nil {
			err = m.Force(v)
		}
	default:
		log.Fatal().Str("cmd", cmd).Msg("comando desconocido (up, down, version, force)")
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migración fallida")
	}
}
