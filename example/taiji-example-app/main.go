package main

import (
	"fmt"
	"os"

	"github.com/corpix/taiji/encoding"
	"github.com/corpix/taiji/log"
)

func main() {
	err := log.Init(log.LevelInfo.String(), log.WithOutput(os.Stderr))
	if err != nil {
		panic(err)
	}

	encoded := encoding.TaijiEncode([]byte("hello world!"))
	fmt.Printf("result: %s\n", encoded)

	decoded, err := encoding.TaijiDecode(encoded)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode")
		os.Exit(1)
	}
	fmt.Println(decoded)
}
