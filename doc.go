// Package envgen loads annotated configuration structs from environment
// variables.
//
// Fields carry env/default/prefix struct tags describing where each value
// comes from:
//
//	type Config struct {
//		Host    string
//		Port    int           `default:"8080"`
//		Timeout time.Duration `default:"30s"`
//		DB      Database      `env:",nested"`
//	}
//
// Load fills a struct directly through reflection. The envgen command
// generates equivalent reflection-free loaders ahead of time; both paths
// share the same key derivation and error reporting.
package envgen
