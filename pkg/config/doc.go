// Package config loads typed configuration structs from environment
// variables and optional .env files, using github.com/caarlos0/env/v11 for
// parsing and github.com/joho/godotenv for file loading.
//
// Every package that needs settings declares its own Config struct with
// `env` tags (JWT_SECRET, PG_CONN_URL, COOKIE_SECURE, ...) and the binary
// loads each one with Load at startup.
package config
