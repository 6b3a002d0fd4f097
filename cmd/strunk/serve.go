package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/revelaction/strunk/api"
	"github.com/revelaction/strunk/storage"
)

func serveCommand(ctx context.Context, opts ServeOptions, ui UI) error {
	logger := newLogger(ui.Err, opts.Verbose)

	ck, err := newChecker(ctx, opts.CheckerOptions, logger)
	if err != nil {
		return err
	}

	var repo storage.DocRepository
	if opts.Repo != "" {
		p := &Pool{}
		defer p.Close()
		repo, err = NewDocRepository(p, opts.Repo, true, logger)
		if err != nil {
			return err
		}
	}

	s := &api.Server{Checker: ck, Repo: repo, Logger: logger}
	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(ui.Out, "Listening on %s\n", opts.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
