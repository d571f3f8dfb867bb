// seed carga productos y clientes desde archivos CSV usando las mismas fachadas que la API.
//
// Uso: go run ./cmd/seed -products products.csv -clients clients.csv [-encoding latin1]
//
// Los registros que ya existen (mismo id) se omiten, así el seed puede repetirse.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/factory"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-api/pkg/config"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

func main() {
	productsPath := flag.String("products", "", "CSV de productos")
	clientsPath := flag.String("clients", "", "CSV de clientes")
	encoding := flag.String("encoding", "utf-8", "codificación de los CSV: utf-8 | latin1 | windows-1252")
	flag.Parse()

	if *productsPath == "" && *clientsPath == "" {
		fmt.Fprintln(os.Stderr, "indique -products y/o -clients")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.RunMigrations {
		if err := postgres.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	if *productsPath != "" {
		products, err := readFile(*productsPath, *encoding, parseProducts)
		if err != nil {
			log.Fatal().Err(err).Str("file", *productsPath).Msg("leer productos")
		}
		facade := factory.NewProductAdmFacade(pool)
		var created, skipped int
		for _, p := range products {
			if _, err := facade.AddProduct(ctx, p); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					skipped++
					continue
				}
				log.Fatal().Err(err).Str("product", p.Name).Msg("registrar producto")
			}
			created++
		}
		log.Info().Int("created", created).Int("skipped", skipped).Msg("productos cargados")
	}

	if *clientsPath != "" {
		clients, err := readFile(*clientsPath, *encoding, parseClients)
		if err != nil {
			log.Fatal().Err(err).Str("file", *clientsPath).Msg("leer clientes")
		}
		facade := factory.NewClientAdmFacade(pool)
		var created, skipped int
		for _, c := range clients {
			if _, err := facade.Add(ctx, c); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					skipped++
					continue
				}
				log.Fatal().Err(err).Str("client", c.Name).Msg("registrar cliente")
			}
			created++
		}
		log.Info().Int("created", created).Int("skipped", skipped).Msg("clientes cargados")
	}
}

func readFile[T any](path, encoding string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decodeReader(f, encoding)
	if err != nil {
		return nil, err
	}
	return parse(r)
}
