package credentials

import (
	"k8s.io/client-go/rest"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

const (
	kubeconfigCluster = "cluster"
	kubeconfigUser    = "user"
	kubeconfigContext = "context"
)

// RESTConfig returns a Kubernetes REST client config for the credentials.
func (c *Credentials) RESTConfig() *rest.Config {
	return &rest.Config{
		Host:        c.Server,
		BearerToken: c.AuthorizationToken,
		TLSClientConfig: rest.TLSClientConfig{
			Insecure: c.InsecureSkipTLSVerify,
			CAData:   c.caData(),
			CertData: nonEmpty(c.ClientCertificateData),
			KeyData:  nonEmpty(c.ClientKeyData),
		},
	}
}

// Kubeconfig returns a single-context kubeconfig for the credentials.
func (c *Credentials) Kubeconfig() *clientcmdapi.Config {
	config := clientcmdapi.NewConfig()
	config.Clusters[kubeconfigCluster] = &clientcmdapi.Cluster{
		Server:                   c.Server,
		CertificateAuthorityData: c.caData(),
		InsecureSkipTLSVerify:    c.InsecureSkipTLSVerify,
	}
	config.AuthInfos[kubeconfigUser] = &clientcmdapi.AuthInfo{
		Token:                 c.AuthorizationToken,
		ClientCertificateData: nonEmpty(c.ClientCertificateData),
		ClientKeyData:         nonEmpty(c.ClientKeyData),
	}
	config.Contexts[kubeconfigContext] = &clientcmdapi.Context{
		Cluster:  kubeconfigCluster,
		AuthInfo: kubeconfigUser,
	}
	config.CurrentContext = kubeconfigContext
	return config
}

// client-go rejects CA data combined with insecure mode
func (c *Credentials) caData() []byte {
	if c.InsecureSkipTLSVerify {
		return nil
	}
	return nonEmpty(c.CertificateAuthorityData)
}

func nonEmpty(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return data
}
