package grpclib

import (
	"fmt"
	"runtime/debug"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryHandlerFunc prints the stack and turns a panic into an Internal error
func RecoveryHandlerFunc(p interface{}) error {
	fmt.Println("PANIC:", p)
	debug.PrintStack()
	return status.Errorf(codes.Internal, "panic: %v", p)
}
