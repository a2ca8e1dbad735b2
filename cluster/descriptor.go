package cluster

import "fmt"

// Descriptor describes a target cluster endpoint and its credentials.
type Descriptor struct {
	CAData                string `yaml:"TARGET_CLUSTER_CLUSTER_CA_DATA" json:"TARGET_CLUSTER_CLUSTER_CA_DATA"`
	URL                   string `yaml:"TARGET_CLUSTER_CLUSTER_URL" json:"TARGET_CLUSTER_CLUSTER_URL"`
	AuthToken             string `yaml:"TARGET_CLUSTER_CLUSTER_AUTH_TOKEN,omitempty" json:"TARGET_CLUSTER_CLUSTER_AUTH_TOKEN,omitempty"`
	ClientCertificateData string `yaml:"TARGET_CLUSTER_CLUSTER_CLIENT_CERTIFICATE_DATA,omitempty" json:"TARGET_CLUSTER_CLUSTER_CLIENT_CERTIFICATE_DATA,omitempty"`
	ClientKeyData         string `yaml:"TARGET_CLUSTER_CLUSTER_CLIENT_KEY_DATA,omitempty" json:"TARGET_CLUSTER_CLUSTER_CLIENT_KEY_DATA,omitempty"`
}

// String returns a log-safe representation; secret material is redacted.
func (d *Descriptor) String() string {
	return fmt.Sprintf("cluster{url: %s, caData: %s, token: %s, clientCertificate: %s, clientKey: %s}",
		d.URL, presence(d.CAData), redact(d.AuthToken), presence(d.ClientCertificateData), redact(d.ClientKeyData))
}

func presence(value string) string {
	if value == "" {
		return "<empty>"
	}
	return fmt.Sprintf("<%d bytes>", len(value))
}

func redact(value string) string {
	if value == "" {
		return "<empty>"
	}
	return "<redacted>"
}
