package commands

import (
	"testing"

	"github.com/spf13/viper"
)

func TestPersistentFlagsBoundToViper(t *testing.T) {
	tests := []struct {
		flag  string
		value string
		want  any
	}{
		{flag: "config", value: "/tmp/custom.yaml", want: "/tmp/custom.yaml"},
		{flag: "debug", value: "true", want: true},
		{flag: "quiet", value: "true", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			if err := rootCmd.PersistentFlags().Set(tt.flag, tt.value); err != nil {
				t.Fatalf("set --%s: %v", tt.flag, err)
			}
			if got := viper.Get(tt.flag); got != tt.want {
				t.Errorf("viper.Get(%q) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}
