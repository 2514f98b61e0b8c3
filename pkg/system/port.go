package system

import (
	"net"
)

// FreePort returns preference if it can be bound on localhost, otherwise any free port.
func FreePort(preference int) (int, error) {
	if port, err := freePort(preference); err == nil {
		return port, err
	}

	return freePort(0)
}

func freePort(port int) (int, error) {
	addr := &net.TCPAddr{
		IP:   net.IPv4(127, 0, 0, 1),
		Port: port,
	}

	ln, err := net.ListenTCP("tcp", addr)

	if err != nil {
		return 0, err
	}

	defer ln.Close()

	return ln.Addr().(*net.TCPAddr).Port, nil
}
