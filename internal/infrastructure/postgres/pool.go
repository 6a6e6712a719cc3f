package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/panasystem/panasystem-api/pkg/config"
)

// Parámetros del pool. La carga es de mostrador: pocas conexiones simultáneas,
// pero siempre alguna viva para que la primera venta de la mañana no pague el
// handshake completo.
const (
	poolMaxConns          = 25
	poolMinConns          = 2
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	poolHealthCheckPeriod = time.Minute
)

// NewPool abre el pool de conexiones a PostgreSQL y lo deja verificado con un
// ping. Toma DATABASE_URL si está definida; si no, arma el DSN con los campos
// sueltos de la config. En ambos casos intenta fijar el host a su IPv4: los
// contenedores del despliegue no tienen salida IPv6 y el DNS del proveedor de
// la base a veces publica solo registros AAAA.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := buildDSN(cfg)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// El host puede volver a resolverse en cada dial (reconexiones), así que
	// el pin a IPv4 también va en el DialFunc y no solo en el DSN.
	poolConfig.ConnConfig.DialFunc = dialIPv4

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.MaxConnIdleTime = poolMaxConnIdleTime
	poolConfig.HealthCheckPeriod = poolHealthCheckPeriod

	// Todos los montos viajan como NUMERIC; el codec los decodifica directo a
	// shopspring/decimal en cada conexión nueva del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// buildDSN arma el string de conexión, con el host ya resuelto a IPv4 cuando
// hay una dirección disponible.
func buildDSN(cfg config.DBConfig) string {
	if cfg.DatabaseURL != "" {
		return pinURLHostToIPv4(cfg.DatabaseURL)
	}
	if ipv4, err := lookupIPv4(cfg.Host); err == nil {
		cfg.Host = ipv4
	}
	return cfg.DSN()
}

// dialIPv4 conecta forzando tcp4. Si el host no tiene IPv4 cae al dial normal,
// por si el resolver devuelve una dirección utilizable en runtime.
func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	dialer := &net.Dialer{}
	ipv4, err := lookupIPv4(host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// lookupIPv4 resuelve un hostname a su dirección IPv4. Prueba el resolver del
// sistema y después uno público, porque el DNS interno de algunos contenedores
// devuelve únicamente IPv6.
func lookupIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("es IPv6")
	}
	if ip, err := lookupIPv4With(host, nil); err == nil {
		return ip, nil
	}
	fallback := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	return lookupIPv4With(host, fallback)
}

func lookupIPv4With(host string, r *net.Resolver) (string, error) {
	var ips []net.IP
	var err error
	if r != nil {
		ips, err = r.LookupIP(context.Background(), "ip4", host)
	} else {
		ips, err = net.LookupIP(host)
	}
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", fmt.Errorf("no hay IPv4")
}

// pinURLHostToIPv4 reescribe el hostname de la URL de conexión con su IPv4.
// Si la URL no parsea o el host no resuelve, se devuelve tal cual y el pin
// queda a cargo del DialFunc.
func pinURLHostToIPv4(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	ipv4, err := lookupIPv4(u.Hostname())
	if err != nil {
		return databaseURL
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
