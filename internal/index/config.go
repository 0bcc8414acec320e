package index

type Config struct {
	Algs []AlgType `envconfig:"GEOINDEX_ALGS" toml:"algs"`
}
