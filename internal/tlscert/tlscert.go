package tlscert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

// Ошибки проверки пары сертификат/ключ.
var (
	ErrCertExpired     = errors.New("certificate is expired")
	ErrCertNotValidYet = errors.New("certificate is not valid yet")
	ErrBlankPEM        = errors.New("pem is blank")
)

const (
	DefaultCertFile = "cert.pem"
	DefaultKeyFile  = "key.pem"
	defaultValidFor = 365 * 24 * time.Hour
	organization    = "Smartlinks"
)

// Options параметры самоподписанного сертификата.
type Options struct {
	CertFile string
	KeyFile  string
	// Hosts имена и IP адреса, для которых выпускается сертификат.
	Hosts    []string
	ValidFor time.Duration
	// Now источник времени, по умолчанию time.Now.
	Now func() time.Time
}

func WithFiles(certFile, keyFile string) func(*Options) {
	return func(o *Options) {
		o.CertFile = certFile
		o.KeyFile = keyFile
	}
}

// WithHosts добавляет хосты к localhost, 127.0.0.1 и ::1.
func WithHosts(hosts ...string) func(*Options) {
	return func(o *Options) {
		o.Hosts = append(o.Hosts, hosts...)
	}
}

func WithValidFor(d time.Duration) func(*Options) {
	return func(o *Options) {
		o.ValidFor = d
	}
}

func WithClock(now func() time.Time) func(*Options) {
	return func(o *Options) {
		o.Now = now
	}
}

func newOptions(opts []func(*Options)) Options {
	o := Options{
		CertFile: DefaultCertFile,
		KeyFile:  DefaultKeyFile,
		Hosts:    []string{"localhost", "127.0.0.1", "::1"},
		ValidFor: defaultValidFor,
		Now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// EnsurePair проверяет файлы сертификата и ключа и перевыпускает пару, если файлов нет,
// они пустые или сертификат просрочен. Валидная пара остается нетронутой.
//
// Возвращает:
//   - bool: true если пара была выпущена заново
//   - error: ошибка чтения, проверки или записи
func EnsurePair(opts ...func(*Options)) (bool, error) {
	o := newOptions(opts)

	certPEM, certErr := readOptional(o.CertFile)
	if certErr != nil {
		return false, certErr
	}
	keyPEM, keyErr := readOptional(o.KeyFile)
	if keyErr != nil {
		return false, keyErr
	}

	checkErr := Check(certPEM, keyPEM, o.Now())
	switch {
	case checkErr == nil:
		return false, nil
	case errors.Is(checkErr, ErrBlankPEM), errors.Is(checkErr, ErrCertExpired):
	default:
		return false, fmt.Errorf("check certificate and private key: %w", checkErr)
	}

	certPEM, keyPEM, genErr := Generate(o)
	if genErr != nil {
		return false, genErr
	}
	if err := writePEM(o.CertFile, certPEM); err != nil {
		return false, fmt.Errorf("save certificate: %w", err)
	}
	if err := writePEM(o.KeyFile, keyPEM); err != nil {
		return false, fmt.Errorf("save private key: %w", err)
	}
	return true, nil
}

// Generate выпускает самоподписанную пару ECDSA P-256 в формате PEM.
func Generate(o Options) ([]byte, []byte, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128)) //nolint:mnd
	if err != nil {
		return nil, nil, fmt.Errorf("generate serial number: %w", err)
	}

	now := o.Now()
	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{organization}},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(o.ValidFor),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}
	for _, h := range o.Hosts {
		if ip := net.ParseIP(h); ip != nil {
			tmpl.IPAddresses = append(tmpl.IPAddresses, ip)
			continue
		}
		tmpl.DNSNames = append(tmpl.DNSNames, h)
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate private key: %w", err)
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return nil, nil, fmt.Errorf("generate certificate: %w", err)
	}
	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal private key: %w", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM, nil
}

// Check проверяет, что PEM данные не пустые и сертификат действителен на момент now.
func Check(certPEM, keyPEM []byte, now time.Time) error {
	if len(certPEM) == 0 || len(keyPEM) == 0 {
		return ErrBlankPEM
	}

	block, _ := pem.Decode(certPEM)
	if block == nil {
		return errors.New("pem decode: block is nil")
	}
	if block.Type != "CERTIFICATE" {
		return fmt.Errorf("unexpected pem block type %q", block.Type)
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return fmt.Errorf("parse certificate: %w", err)
	}

	if cert.NotBefore.After(now) {
		return ErrCertNotValidYet
	}
	if cert.NotAfter.Before(now) {
		return ErrCertExpired
	}
	return nil
}

// readOptional читает файл, отсутствующий файл дает пустые данные.
func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writePEM(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
