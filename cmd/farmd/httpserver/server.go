// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package httpserver starts the http servers of farmd.
package httpserver

import (
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
)

var logger = log.WithContext("pkg", "httpserver")

// serve listens on addr and serves handler until the returned close func is called.
func serve(name, addr string, handler http.Handler) (net.Addr, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "listen %v addr [%v]", name, addr)
	}

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes errgroup.Group
	goes.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("server stopped", "name", name, "err", err)
			return err
		}
		return nil
	})
	return listener.Addr(), func() {
		srv.Close()
		goes.Wait()
	}, nil
}
