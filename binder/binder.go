package binder

import (
	"fmt"

	"github.com/viant/mcptarget/cluster"
)

// Bind builds the HeaderSet for descriptor under mode. The CA data and server
// URL are always included verbatim; Token adds the authorization header,
// Certificate adds the client certificate and key headers. On error no
// HeaderSet is returned.
func Bind(descriptor *cluster.Descriptor, mode AuthMode) (*HeaderSet, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAuthMode, mode)
	}
	if descriptor == nil {
		descriptor = &cluster.Descriptor{}
	}
	if err := validate(descriptor, mode); err != nil {
		return nil, err
	}
	ret := newHeaderSet()
	ret.set(HeaderCertificateAuthorityData, descriptor.CAData)
	ret.set(HeaderServer, descriptor.URL)
	switch mode {
	case Token:
		ret.set(HeaderAuthorization, descriptor.AuthToken)
	case Certificate:
		ret.set(HeaderClientCertificateData, descriptor.ClientCertificateData)
		ret.set(HeaderClientKeyData, descriptor.ClientKeyData)
	}
	return ret, nil
}

func validate(descriptor *cluster.Descriptor, mode AuthMode) error {
	var missing []string
	required := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}
	required("clusterCaData", descriptor.CAData)
	required("clusterUrl", descriptor.URL)
	switch mode {
	case Token:
		required("clusterAuthToken", descriptor.AuthToken)
	case Certificate:
		required("clusterClientCertificateData", descriptor.ClientCertificateData)
		required("clusterClientKeyData", descriptor.ClientKeyData)
	}
	if len(missing) > 0 {
		return &DescriptorError{Mode: mode, Missing: missing}
	}
	return nil
}
