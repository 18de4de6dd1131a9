package nets

import (
	"cmp"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
)

// ProxyAddr is a proxy url like socks5://127.0.0.1:1080. Empty means direct.
type ProxyAddr string

var proxyEnvs = []string{
	"ALL_PROXY", "all_proxy",
	"HTTPS_PROXY", "https_proxy",
	"HTTP_PROXY", "http_proxy",
}

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) ProxyAddr {
	if mode == modes.ModeDevelopment {
		return ""
	}
	addr := configs.First[ProxyAddr](loader, "proxy_addr")
	for _, env := range proxyEnvs {
		addr = cmp.Or(addr, ProxyAddr(os.Getenv(env)))
	}
	if addr != "" {
		logger.Info("proxy", "addr", addr)
	}
	return addr
}

// ProxyURL parses ProxyAddr once. It returns nil for direct connections.
type ProxyURL func() (*url.URL, error)

func (Module) ProxyURL(
	addr ProxyAddr,
) ProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if addr == "" {
			return nil, nil
		}
		str := string(addr)
		if !strings.Contains(str, "://") {
			// bare host:port
			str = "socks5://" + str
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}
