package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple_camel",
			input: "getTxHash",
			want:  "get_tx_hash",
		},
		{
			name:  "leading_capital",
			input: "NeoCpp",
			want:  "neo_cpp",
		},
		{
			name:  "trailing_capital_run",
			input: "getTXHash",
			want:  "get_tx_hash",
		},
		{
			name:  "leading_capital_run",
			input: "NEOGetVersion",
			want:  "neo_get_version",
		},
		{
			name:  "capital_run_then_word",
			input: "TXHash",
			want:  "tx_hash",
		},
		{
			name:  "all_capitals",
			input: "NEP6",
			want:  "nep6",
		},
		{
			name:  "digit_before_capital",
			input: "base58Check",
			want:  "base58_check",
		},
		{
			name:  "single_word",
			input: "wallet",
			want:  "wallet",
		},
		{
			name:  "single_capital_word",
			input: "Wallet",
			want:  "wallet",
		},
		{
			name:  "already_snake",
			input: "get_block_header",
			want:  "get_block_header",
		},
		{
			name:  "underscore_before_capital",
			input: "foo_Bar",
			want:  "foo__bar",
		},
		{
			name:  "interleaved_capitals",
			input: "AbCdEf",
			want:  "ab_cd_ef",
		},
		{
			name:  "capital_run_mid_word",
			input: "AbcDEFGhi",
			want:  "abc_def_ghi",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToSnake(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSnake_Idempotent(t *testing.T) {
	inputs := []string{
		"getTXHash",
		"NEOGetVersion",
		"GetBlockHeader",
		"NeoSwiftService",
		"base58Check",
	}

	for _, in := range inputs {
		once := ToSnake(in)
		twice := ToSnake(once)
		assert.Equal(t, once, twice, "ToSnake should be stable for %q", in)
	}
}
