// Package config loads portfolio-api configuration from YAML files.
//
// Configuration values may reference environment variables with ${VAR}
// syntax, which is expanded before parsing. Duration values (token_ttl) are
// written as Go duration strings ("24h", "90m").
//
// Example configuration:
//
//	server:
//	  http_addr: ":8080"
//	database:
//	  path: /var/lib/portfolio-api/portfolio.db
//	auth:
//	  jwt_secret: ${PORTFOLIO_JWT_SECRET}
//	  token_ttl: 24h
//	cors:
//	  allowed_origins: []   # empty means allow all
//	logging:
//	  level: info
//	  format: text
package config
