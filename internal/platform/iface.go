package platform

import "net"

// DetectDefaultInterface returns the name of the interface that carries the
// default route, so the UI can highlight it among the rate sensors.
// Falls back to the first non-loopback interface that is up.
func DetectDefaultInterface() string {
	// Dialing UDP sends no traffic but makes the kernel pick the outbound
	// local address; the interface owning that address is the default one.
	conn, err := net.Dial("udp4", "8.8.8.8:53")
	if err != nil {
		return fallbackInterface()
	}
	defer conn.Close()

	localIP := conn.LocalAddr().(*net.UDPAddr).IP

	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if !usableInterface(iface) {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip != nil && ip.Equal(localIP) {
				return iface.Name
			}
		}
	}

	return fallbackInterface()
}

func fallbackInterface() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if !usableInterface(iface) {
			continue
		}
		if addrs, _ := iface.Addrs(); len(addrs) > 0 {
			return iface.Name
		}
	}
	return ""
}

func usableInterface(iface net.Interface) bool {
	return iface.Flags&net.FlagLoopback == 0 && iface.Flags&net.FlagUp != 0
}
