package provider

import "slices"

// BaseProvider carries the metadata half of Provider.
// Embed it in concrete providers.
type BaseProvider struct {
	info ProviderInfo
}

// NewBaseProvider creates a base provider.
func NewBaseProvider(name, description, website string, caps ...Capability) BaseProvider {
	return BaseProvider{
		info: ProviderInfo{
			Name:         name,
			Description:  description,
			Website:      website,
			Capabilities: caps,
		},
	}
}

// Info returns a copy of the provider metadata.
func (b *BaseProvider) Info() ProviderInfo {
	info := b.info
	info.Capabilities = slices.Clone(b.info.Capabilities)
	return info
}

// Supports reports whether the provider declared c.
func (b *BaseProvider) Supports(c Capability) bool {
	return slices.Contains(b.info.Capabilities, c)
}

// Upstream wraps err as an UpstreamError for op. NotFoundError and
// UpstreamError values pass through unchanged.
func (b *BaseProvider) Upstream(op string, err error) error {
	if err == nil || IsNotFound(err) || IsUpstream(err) {
		return err
	}
	return &UpstreamError{Provider: b.info.Name, Op: op, Err: err}
}
