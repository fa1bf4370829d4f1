package main

import (
	"encoding/json"

	"github.com/biggeezerdevelopment/simdnum/internal/swar"
)

type CPUInfo struct{}

func (x *CPUInfo) Execute(args []string) error {
	info := swar.Host()
	log.Debugf("host: %+v", info)
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
