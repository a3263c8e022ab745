package httpserver

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io"
	"math/big"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

func writeTempCertPair(t *testing.T) (certPath, keyPath string) {
	t.Helper()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := x509.Certificate{
		SerialNumber:          big.NewInt(2),
		Subject:               pkix.Name{CommonName: "127.0.0.1"},
		NotBefore:             time.Now().Add(-time.Minute),
		NotAfter:              time.Now().Add(24 * time.Hour),
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
	}

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &priv.PublicKey, priv)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(priv)
	require.NoError(t, err)

	dir := t.TempDir()
	certPath = filepath.Join(dir, "cert.pem")
	keyPath = filepath.Join(dir, "key.pem")

	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))

	return certPath, keyPath
}

func newTestListener(t *testing.T) net.Listener {
	t.Helper()

	l, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	t.Cleanup(func() { _ = l.Close() })

	return l
}

func okHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })

	return mux
}

// get retries until the server goroutine is accepting or the deadline passes.
func get(t *testing.T, client *http.Client, url string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var (
		resp *http.Response
		err  error
	)

	for ctx.Err() == nil {
		req, rerr := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		require.NoError(t, rerr)

		if resp, err = client.Do(req); err == nil {
			break
		}

		time.Sleep(50 * time.Millisecond)
	}

	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}

func TestPlainServes(t *testing.T) { //nolint:paralleltest // binds a port
	l := newTestListener(t)
	s := New(okHandler(), Listener(l), Logger(logger.New("error")))

	defer func() { _ = s.Shutdown() }()

	assert.Equal(t, "ok", get(t, http.DefaultClient, "http://"+l.Addr().String()+"/"))
}

func TestTLSSelfSignedServes(t *testing.T) { //nolint:paralleltest // binds a port
	l := newTestListener(t)
	s := New(okHandler(), Listener(l), TLS(true, "", ""), Logger(logger.New("error")))

	defer func() { _ = s.Shutdown() }()

	client := &http.Client{Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}} //nolint:gosec // self-signed test server

	assert.Equal(t, "ok", get(t, client, "https://"+l.Addr().String()+"/"))
}

func TestTLSWithProvidedCertsServes(t *testing.T) { //nolint:paralleltest // binds a port
	cert, key := writeTempCertPair(t)
	l := newTestListener(t)
	s := New(okHandler(), Listener(l), TLS(true, cert, key))

	defer func() { _ = s.Shutdown() }()

	certPEM, err := os.ReadFile(cert)
	require.NoError(t, err)

	roots := x509.NewCertPool()
	require.True(t, roots.AppendCertsFromPEM(certPEM))

	client := &http.Client{Transport: &http.Transport{TLSClientConfig: &tls.Config{RootCAs: roots, MinVersion: tls.VersionTLS12}}}

	assert.Equal(t, "ok", get(t, client, "https://"+l.Addr().String()+"/"))
}

func TestTLSConfigErrors(t *testing.T) { //nolint:paralleltest // server lifecycle
	missing := filepath.Join(t.TempDir(), "missing.crt")

	tests := []struct {
		name      string
		cert, key string
		wantIs    error
	}{
		{name: "missing files", cert: missing, key: missing},
		{name: "cert without key", cert: "onlycert.pem", wantIs: ErrTLSCertKeyMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(okHandler(), Listener(newTestListener(t)), TLS(true, tc.cert, tc.key))

			defer func() { _ = s.Shutdown() }()

			select {
			case err := <-s.Notify():
				require.Error(t, err)

				if tc.wantIs != nil {
					assert.ErrorIs(t, err, tc.wantIs)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("timeout waiting for server error")
			}
		})
	}
}
