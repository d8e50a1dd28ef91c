package logger

import "log/slog"

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Address is the cluster endpoint, e.g. https://es.local:9200.
func Address(addr string) slog.Attr {
	return slog.String("address", addr)
}

func Path(p string) slog.Attr {
	return slog.String("path", p)
}

func Fingerprint(fp string) slog.Attr {
	return slog.String("sha256", fp)
}

func Username(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("username", name)
}

func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
