// Package config wires external configuration into the logging
// pipeline.
//
// A Config can come from a YAML file (Load) or from REDLOG_*
// environment variables (FromEnv, which also reads a local .env file
// through godotenv). Apply pushes the level and theme into a registry
// and builds a root logger matching the configured output and format:
//
//	cfg, err := config.Load("logging.yml")
//	if err != nil {
//	    ...
//	}
//	log, err := config.Apply(cfg, nil, "app")
package config
