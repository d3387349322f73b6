package telemetry

// PaymentsServiceConfig is the telemetry configuration for the payments service
var PaymentsServiceConfig = Config{
	ServiceName:    "payments-service",
	ServiceVersion: "1.0.0",
}

// WithOTLPEndpoint sets the OTLP endpoint for a config
func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}

// WithServiceName sets the service name for a config
func (c Config) WithServiceName(name string) Config {
	if name != "" {
		c.ServiceName = name
	}
	return c
}
