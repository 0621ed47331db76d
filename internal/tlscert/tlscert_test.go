package tlscert

import (
	"crypto/tls"
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CertSuite struct {
	suite.Suite
	dir      string
	certFile string
	keyFile  string
}

func TestCertSuite(t *testing.T) {
	suite.Run(t, new(CertSuite))
}

func (s *CertSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.certFile = filepath.Join(s.dir, "tls", "cert.pem")
	s.keyFile = filepath.Join(s.dir, "tls", "key.pem")
}

func (s *CertSuite) TestGenerate() {
	certPEM, keyPEM, err := Generate(newOptions([]func(*Options){WithHosts("links.example.com")}))
	s.Require().NoError(err)

	pair, err := tls.X509KeyPair(certPEM, keyPEM)
	s.Require().NoError(err)
	leaf, err := x509.ParseCertificate(pair.Certificate[0])
	s.Require().NoError(err)
	s.Contains(leaf.DNSNames, "links.example.com")
	s.Contains(leaf.DNSNames, "localhost")
	s.Len(leaf.IPAddresses, 2)

	s.NoError(Check(certPEM, keyPEM, time.Now()))
}

func (s *CertSuite) TestCheck() {
	s.ErrorIs(Check(nil, nil, time.Now()), ErrBlankPEM)
	s.Error(Check([]byte("garbage"), []byte("garbage"), time.Now()))

	certPEM, keyPEM, err := Generate(newOptions([]func(*Options){WithValidFor(time.Hour)}))
	s.Require().NoError(err)
	s.ErrorIs(Check(certPEM, keyPEM, time.Now().Add(2*time.Hour)), ErrCertExpired)
	s.ErrorIs(Check(certPEM, keyPEM, time.Now().Add(-time.Hour)), ErrCertNotValidYet)
}

func (s *CertSuite) TestEnsurePair() {
	files := WithFiles(s.certFile, s.keyFile)

	s.Run("missing files are generated", func() {
		issued, err := EnsurePair(files)
		s.Require().NoError(err)
		s.True(issued)
		s.FileExists(s.certFile)
		s.FileExists(s.keyFile)
	})

	s.Run("valid pair is kept", func() {
		before, err := os.ReadFile(s.certFile)
		s.Require().NoError(err)

		issued, err := EnsurePair(files)
		s.Require().NoError(err)
		s.False(issued)

		after, err := os.ReadFile(s.certFile)
		s.Require().NoError(err)
		s.Equal(before, after)
	})

	s.Run("expired pair is reissued", func() {
		future := time.Now().Add(2 * 365 * 24 * time.Hour)
		issued, err := EnsurePair(files, WithClock(func() time.Time { return future }))
		s.Require().NoError(err)
		s.True(issued)
	})

	s.Run("broken pem is an error", func() {
		s.Require().NoError(os.WriteFile(s.certFile, []byte("broken"), 0o600))
		_, err := EnsurePair(files)
		s.Error(err)
	})
}
