package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

func initLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}

func run() error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <image|directory|archive>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one path argument, got %d", flag.NArg())
	}
	path := flag.Arg(0)

	config, err := loadConfig()
	if err != nil {
		return err
	}

	list, err := buildImageList(path, config.SortAlgorithm)
	if err != nil {
		return fmt.Errorf("building image list for %s: %w", path, err)
	}
	log.Infof("Found %d images", list.Len())

	viewer := NewViewer(config, list)
	if err := viewer.Start(); err != nil {
		return err
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(viewer); err != nil {
		return fmt.Errorf("render loop: %w", err)
	}
	return nil
}

func main() {
	initLogging()
	if err := run(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
