package flashloan

// ProtocolOption configures a Protocol.
type ProtocolOption func(*protocolConfig)

// protocolConfig holds configuration for NewProtocol.
type protocolConfig struct {
	feeBasisPoints uint64
	poolSeed       []byte
}

// defaultProtocolConfig returns the default protocol configuration.
func defaultProtocolConfig() *protocolConfig {
	return &protocolConfig{
		feeBasisPoints: FeeBasisPoints,
		poolSeed:       DefaultPoolSeed,
	}
}

// WithFeeBasisPoints sets the loan fee rate in basis points.
// Default is 500 (5.00%). Rates above FeeDenominator are capped.
func WithFeeBasisPoints(bps uint64) ProtocolOption {
	return func(c *protocolConfig) {
		if bps > FeeDenominator {
			bps = FeeDenominator
		}
		c.feeBasisPoints = bps
	}
}

// WithPoolSeed sets the seed material for pool identity derivation.
// Default is DefaultPoolSeed.
func WithPoolSeed(seed []byte) ProtocolOption {
	return func(c *protocolConfig) {
		c.poolSeed = seed
	}
}
