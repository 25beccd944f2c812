package pkg

import "blockgen"

// AssertNoError stops startup on an error that leaves the service unusable.
func AssertNoError(err error, msg string) {
	if err != nil {
		blockgen.Logger.Error().Err(err).Msg(msg)
		panic(err)
	}
}
