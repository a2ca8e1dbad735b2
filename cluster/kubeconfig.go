package cluster

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// FromKubeconfig builds a descriptor from kubeconfig data for contextName
// (current context when empty). Certificate material is base64-encoded so
// the result matches the on-disk descriptor format.
func FromKubeconfig(data []byte, contextName string) (*Descriptor, error) {
	config, err := clientcmd.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	return fromConfig(config, contextName)
}

// LoadKubeconfig reads the kubeconfig file at filename, see FromKubeconfig.
// Relative certificate-authority and tokenFile paths resolve against the
// kubeconfig directory.
func LoadKubeconfig(filename string, contextName string) (*Descriptor, error) {
	config, err := clientcmd.LoadFromFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig %v: %w", filename, err)
	}
	return fromConfig(config, contextName)
}

func fromConfig(config *clientcmdapi.Config, contextName string) (*Descriptor, error) {
	if contextName == "" {
		contextName = config.CurrentContext
	}
	if contextName == "" {
		return nil, fmt.Errorf("kubeconfig has no current context")
	}
	kubeContext, ok := config.Contexts[contextName]
	if !ok {
		return nil, fmt.Errorf("context %q not found in kubeconfig", contextName)
	}
	kubeCluster, ok := config.Clusters[kubeContext.Cluster]
	if !ok {
		return nil, fmt.Errorf("cluster %q of context %q not found in kubeconfig", kubeContext.Cluster, contextName)
	}
	authInfo, ok := config.AuthInfos[kubeContext.AuthInfo]
	if !ok {
		return nil, fmt.Errorf("user %q of context %q not found in kubeconfig", kubeContext.AuthInfo, contextName)
	}

	caData := kubeCluster.CertificateAuthorityData
	if len(caData) == 0 && kubeCluster.CertificateAuthority != "" {
		var err error
		if caData, err = os.ReadFile(kubeCluster.CertificateAuthority); err != nil {
			return nil, fmt.Errorf("failed to read certificate authority %v: %w", kubeCluster.CertificateAuthority, err)
		}
	}
	token := authInfo.Token
	if token == "" && authInfo.TokenFile != "" {
		data, err := os.ReadFile(authInfo.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read token file %v: %w", authInfo.TokenFile, err)
		}
		token = strings.TrimSpace(string(data))
	}
	return &Descriptor{
		CAData:                encode(caData),
		URL:                   kubeCluster.Server,
		AuthToken:             token,
		ClientCertificateData: encode(authInfo.ClientCertificateData),
		ClientKeyData:         encode(authInfo.ClientKeyData),
	}, nil
}

func encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}
