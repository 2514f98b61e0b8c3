package static

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const DefaultIndex = "index.html"

type Config struct {
	// Root is the directory to serve, defaults to the working directory.
	Root string

	// Index is the document served for "/" and for directories.
	Index string

	Logger *slog.Logger
}

type Server struct {
	root  string
	index string

	logger *slog.Logger

	app *fiber.App
}

func New(c Config) (*Server, error) {
	root := c.Root

	if root == "" {
		wd, err := os.Getwd()

		if err != nil {
			return nil, err
		}

		root = wd
	}

	root, err := filepath.Abs(root)

	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)

	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", root)
	}

	index := c.Index

	if index == "" {
		index = DefaultIndex
	}

	logger := c.Logger

	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		root:  root,
		index: index,

		logger: logger,
	}

	files := newFileSystem(root)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,

		ErrorHandler: ErrorHandler,
	})

	app.Use(NoCache())

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Use(AccessLog(logger))
	app.Use(RewriteRoot(index))
	app.Use(redirectDir(files))

	app.Use(filesystem.New(filesystem.Config{
		Root:   files,
		Index:  index,
		Browse: true,
	}))

	s.app = app

	return s, nil
}

func (s *Server) Handler() *fiber.App {
	return s.app
}

// ListenAndServe binds addr and serves until ctx is cancelled.
// Bind errors are returned unchanged.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)

	if err != nil {
		return err
	}

	return s.Serve(ctx, l)
}

func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}

		if err := s.app.Shutdown(); err != nil {
			s.logger.Warn("shutdown failed", "error", err)
		}
	}()

	s.logger.Debug("serving files", "root", s.root, "addr", l.Addr().String())

	if err := s.app.Listener(l); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
