package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/textretrieval/go-text-retrieval/api"
	"github.com/textretrieval/go-text-retrieval/config"
	"github.com/textretrieval/go-text-retrieval/internal/engine"
)

func main() {
	app := &cli.App{
		Name:  "textsearch",
		Usage: "Boolean and proximity search over a fixed document collection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   "textsearch.yaml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Build or load the indexes and serve the HTTP query API",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "Port to listen on (overrides config)",
					},
				},
				Action: runServe,
			},
			{
				Name:      "query",
				Usage:     "Evaluate a single query and print the matching document ids",
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Query type: boolean or proximity",
						Value:   "boolean",
					},
				},
				Action: runQuery,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newEngine(c *cli.Context) (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}

func runServe(c *cli.Context) error {
	eng, cfg, err := newEngine(c)
	if err != nil {
		return err
	}
	if port := c.Int("port"); port != 0 {
		cfg.Server.Port = port
	}

	router := gin.Default()
	api.SetupRoutes(router, eng, eng.Metrics())

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Printf("Starting server on %s...", addr)
	return router.Run(addr)
}

func runQuery(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("usage: textsearch query [--type boolean|proximity] QUERY", 2)
	}
	queryType, ok := api.ParseQueryType(c.String("type"))
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown query type %q (expected 'boolean' or 'proximity')", c.String("type")), 2)
	}

	eng, _, err := newEngine(c)
	if err != nil {
		return err
	}

	result, err := eng.Search(c.Args().First(), queryType)
	if err != nil {
		return err
	}
	if len(result.DocIDs) == 0 {
		fmt.Println("No matching documents found.")
		return nil
	}
	for _, docID := range result.DocIDs {
		fmt.Printf("Document ID: %d\n", docID)
	}
	return nil
}
