package httpserver

import (
	"net/http"
	"time"
)

// NewServer 把 Handler 包成 *http.Server，main 里只管启动和关闭
func NewServer(addr string, h *Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}
