/*
main.go - Application entry point

PURPOSE:
  Renders the configured year's PTO calendar to printable files, or
  serves it over HTTP for preview.

COMMAND-LINE FLAGS:
  -config  Path to the YAML configuration (default: ptocal.yaml)
  -out     Output directory for generated files (default: .)
  -format  html, pdf, or both (default: html)
  -serve   Serve the calendar over HTTP instead of writing files
  -addr    Listen address for -serve (default: :8080)

OUTPUT FILES:
  pto<year>.html / pto<year>.pdf, named per year so the navigation
  links between adjacent years' files resolve. HTML output also ships
  calendar.css next to the page.

EXAMPLES:
  # Write pto2024.html next to the config
  ./ptocal -config=2024.yaml

  # Write both formats into ./out
  ./ptocal -config=2024.yaml -out=./out -format=both

  # Preview at http://localhost:8080/calendar
  ./ptocal -config=2024.yaml -serve

SEE ALSO:
  - config: file/env configuration loading
  - render: document construction and writers
  - api: the HTTP preview surface
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/warp/pto-calendar/api"
	"github.com/warp/pto-calendar/config"
	"github.com/warp/pto-calendar/render"
)

func main() {
	configPath := flag.String("config", "ptocal.yaml", "path to YAML configuration")
	outDir := flag.String("out", ".", "output directory for generated files")
	format := flag.String("format", "html", "output format: html, pdf, or both")
	serve := flag.Bool("serve", false, "serve the calendar over HTTP instead of writing files")
	addr := flag.String("addr", ":8080", "listen address for -serve")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	setLogLevel(cfg.LogLevel)

	if *serve {
		runServer(cfg, *addr)
		return
	}

	if err := writeFiles(cfg, *outDir, *format); err != nil {
		log.Fatalf("Failed to write calendar: %v", err)
	}
}

func setLogLevel(level string) {
	if level == "" {
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, keeping default", level)
		return
	}
	log.SetLevel(parsed)
}

func writeFiles(cfg config.Config, outDir, format string) error {
	if format != "html" && format != "pdf" && format != "both" {
		return fmt.Errorf("unknown format %q: want html, pdf, or both", format)
	}

	doc, err := render.BuildYear(render.Input{
		Company:  cfg.Company,
		Employee: cfg.Employee,
		Year:     cfg.Year,
		Policy:   cfg.Policy,
		Events:   cfg.Records(),
	})
	if err != nil {
		return err
	}

	if format == "html" || format == "both" {
		path := filepath.Join(outDir, fmt.Sprintf("pto%d.html", cfg.Year))
		if err := writeTo(path, func(f *os.File) error {
			w := &render.HTMLWriter{Stylesheet: "calendar.css"}
			return w.WritePage(f, doc)
		}); err != nil {
			return err
		}
		log.Infof("Wrote %s", path)

		cssPath := filepath.Join(outDir, "calendar.css")
		if err := os.WriteFile(cssPath, []byte(render.Stylesheet), 0o644); err != nil {
			return err
		}
		log.Infof("Wrote %s", cssPath)
	}

	if format == "pdf" || format == "both" {
		path := filepath.Join(outDir, fmt.Sprintf("pto%d.pdf", cfg.Year))
		if err := writeTo(path, func(f *os.File) error {
			w := &render.PDFWriter{}
			return w.WriteDocument(f, doc)
		}); err != nil {
			return err
		}
		log.Infof("Wrote %s", path)
	}

	return nil
}

func writeTo(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runServer(cfg config.Config, addr string) {
	handler := api.NewHandler(cfg)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Serving %d calendar on %s", cfg.Year, addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Info("Server stopped")
}
