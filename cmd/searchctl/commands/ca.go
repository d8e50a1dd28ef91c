package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/searchkit/pkg/opensearch"
)

// timeLayout renders certificate validity bounds.
const timeLayout = "2006-01-02 15:04:05 MST"

type certificateInfo struct {
	Path      string `json:"path" yaml:"path"`
	Alias     string `json:"alias" yaml:"alias"`
	Subject   string `json:"subject" yaml:"subject"`
	Issuer    string `json:"issuer" yaml:"issuer"`
	NotBefore string `json:"not_before" yaml:"not_before"`
	NotAfter  string `json:"not_after" yaml:"not_after"`
	Expired   bool   `json:"expired" yaml:"expired"`
	IsCA      bool   `json:"is_ca" yaml:"is_ca"`
	SHA256    string `json:"sha256" yaml:"sha256"`
	Ignored   int    `json:"ignored_certificates" yaml:"ignored_certificates"`
}

func newCACommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ca",
		Short: "Work with the trusted CA certificate",
	}
	cmd.AddCommand(newCAInspectCommand(a))
	return cmd
}

func newCAInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [path]",
		Short: "Parse a CA certificate the way the client would and describe it",
		Long: `Parse a CA certificate the way the client would and describe it.

The path defaults to --ca-cert / OPENSEARCH_CA_CERT_PATH and may point to a
local file or to s3://bucket/key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.CACertPath
			if len(args) == 1 {
				path = args[0]
			}
			if strings.TrimSpace(path) == "" {
				return errors.New("no CA certificate path given")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			loader, err := a.loaderFor(ctx, path)
			if err != nil {
				return err
			}
			m, err := opensearch.NewTrustBuilder(loader, a.log).Load(ctx, path)
			if err != nil {
				return err
			}

			info := describeCertificate(path, m, time.Now())
			return render(cmd.OutOrStdout(), a.output, info, []property{
				{"Path", info.Path},
				{"Alias", info.Alias},
				{"Subject", info.Subject},
				{"Issuer", info.Issuer},
				{"Not before", info.NotBefore},
				{"Not after", info.NotAfter},
				{"Expired", yesNo(info.Expired)},
				{"CA", yesNo(info.IsCA)},
				{"SHA-256", info.SHA256},
				{"Ignored certificates", strconv.Itoa(info.Ignored)},
			})
		},
	}
}

func describeCertificate(path string, m *opensearch.TrustMaterial, now time.Time) certificateInfo {
	c := m.Certificate
	return certificateInfo{
		Path:      path,
		Alias:     m.Alias,
		Subject:   c.Subject.String(),
		Issuer:    c.Issuer.String(),
		NotBefore: formatTime(c.NotBefore),
		NotAfter:  formatTime(c.NotAfter),
		Expired:   now.After(c.NotAfter) || now.Before(c.NotBefore),
		IsCA:      c.IsCA,
		SHA256:    fingerprint(m.Fingerprint()),
		Ignored:   m.Ignored,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// fingerprint groups a hex digest into colon separated byte pairs.
func fingerprint(hex string) string {
	var b strings.Builder
	for i := 0; i < len(hex); i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(strings.ToUpper(hex[i:min(i+2, len(hex))]))
	}
	return b.String()
}

