package service

// AESCBCEngineFactory implements EngineFactory for the AES-256-CBC envelope
// format. It exists so use cases depend on an interface rather than a
// concrete cipher construction.
type AESCBCEngineFactory struct{}

// NewAESCBCEngineFactory creates a new factory.
func NewAESCBCEngineFactory() *AESCBCEngineFactory {
	return &AESCBCEngineFactory{}
}

// CreateEngine creates an AES-256-CBC engine for the given key.
func (f *AESCBCEngineFactory) CreateEngine(key []byte) (EncryptionEngine, error) {
	return NewAESCBCEngine(key)
}
