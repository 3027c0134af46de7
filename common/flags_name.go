package common

const (
	DataDir  = "datadir"
	LogLevel = "loglevel"
	LogFile  = "logfile"
	Metrics  = "metrics"
	Workers  = "workers"
	Alphabet = "alphabet"
	Symbols  = "symbols"
	Hex      = "hex"
	Dump     = "dump"
)
