//go:build linux

package platform

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"syscall"
	"unsafe"

	"github.com/googlesky/sentop/internal/model"
	"github.com/mdlayher/netlink"
)

const (
	// Netlink route family and link message types
	netlinkRoute = 0  // NETLINK_ROUTE
	rtmNewLink   = 16 // RTM_NEWLINK
	rtmGetLink   = 18 // RTM_GETLINK

	// Link attributes we care about
	iflaIfname  = 3  // IFLA_IFNAME
	iflaStats   = 7  // IFLA_STATS (32-bit counters)
	iflaStats64 = 23 // IFLA_STATS64 (64-bit counters)

	// Interface flags
	iffUp       = 0x1
	iffLoopback = 0x8
)

// ifInfoMsg is the wire format of struct ifinfomsg (16 bytes), the header of
// every RTM_GETLINK request and RTM_NEWLINK response.
type ifInfoMsg struct {
	Family uint8
	Pad    uint8
	Type   uint16
	Index  int32
	Flags  uint32
	Change uint32
}

// LinuxPlatform reads sensors from /proc and /sys, and interface counters
// from netlink RTM_GETLINK with a /proc/net/dev fallback.
type LinuxPlatform struct {
	// conn is the NETLINK_ROUTE connection. nil when netlink is unavailable
	// (e.g. a restrictive sandbox or seccomp profile).
	conn *netlink.Conn

	// useProc is true when interface counters must come from /proc/net/dev
	// instead of a netlink link dump.
	useProc bool

	// cpuPrev holds the last /proc/stat counters so CPU usage can be
	// computed as a delta between collections.
	cpuPrev map[string]cpuTimes
}

// NewPlatform creates the Linux collection backend. It attempts a netlink
// link dump first; if the socket cannot be opened or the kernel rejects the
// dump, interface counters fall back to /proc/net/dev transparently.
func NewPlatform() (Platform, error) {
	p := &LinuxPlatform{}

	conn, err := netlink.Dial(netlinkRoute, nil)
	if err != nil {
		log.Printf("sentop: netlink dial failed, using /proc/net/dev fallback: %v", err)
		p.useProc = true
		return p, nil
	}

	// Probe with a real dump so a broken route socket is caught here rather
	// than on every collection.
	if _, probeErr := queryLinks(conn); probeErr != nil {
		conn.Close()
		log.Printf("sentop: netlink link dump unavailable, using /proc/net/dev fallback: %v", probeErr)
		p.useProc = true
		return p, nil
	}

	p.conn = conn
	return p, nil
}

func (p *LinuxPlatform) Close() error {
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func (p *LinuxPlatform) Collect() ([]model.Reading, []model.InterfaceStats, error) {
	var readings []model.Reading

	// CPU usage needs two /proc/stat snapshots; the first collection only
	// primes the counters and yields no CPU readings.
	cpu, err := readProcStat()
	if err != nil {
		return nil, nil, fmt.Errorf("read /proc/stat: %w", err)
	}
	readings = append(readings, cpuUsageReadings(p.cpuPrev, cpu)...)
	p.cpuPrev = cpu

	if mem, err := readMemInfo(); err == nil {
		readings = append(readings, mem)
	}
	if load, err := readLoadAvg(); err == nil {
		readings = append(readings, load)
	}

	// Thermal zones are optional hardware; absence is not an error.
	readings = append(readings, readThermalZones()...)

	ifaces, err := p.interfaceStats()
	if err != nil {
		// Non-fatal; sensors are still worth publishing.
		ifaces = nil
	}

	return readings, ifaces, nil
}

func (p *LinuxPlatform) interfaceStats() ([]model.InterfaceStats, error) {
	if p.useProc {
		return ParseNetDev()
	}

	ifaces, err := queryLinks(p.conn)
	if err != nil {
		// Netlink broke at runtime; switch to /proc/net/dev for good.
		if isNetlinkUnavailable(err) {
			log.Printf("sentop: netlink link dump failed at runtime, falling back to /proc/net/dev: %v", err)
			p.useProc = true
			p.conn.Close()
			p.conn = nil
			return ParseNetDev()
		}
		return nil, err
	}
	return ifaces, nil
}

// queryLinks dumps all network links over netlink and extracts name plus
// cumulative byte counters for every interface that is up and not loopback.
func queryLinks(conn *netlink.Conn) ([]model.InterfaceStats, error) {
	req := ifInfoMsg{}
	reqBytes := (*[unsafe.Sizeof(req)]byte)(unsafe.Pointer(&req))[:]

	msgs, err := conn.Execute(netlink.Message{
		Header: netlink.Header{
			Type:  rtmGetLink,
			Flags: netlink.Request | netlink.Dump,
		},
		Data: reqBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("link dump: %w", err)
	}

	var ifaces []model.InterfaceStats
	for _, m := range msgs {
		if m.Header.Type != rtmNewLink {
			continue
		}
		stats, ok, err := parseLinkMsg(m.Data)
		if err != nil {
			continue
		}
		if ok {
			ifaces = append(ifaces, stats)
		}
	}
	return ifaces, nil
}

// parseLinkMsg decodes one RTM_NEWLINK payload: a fixed ifinfomsg header
// followed by netlink attributes. ok is false for links that should be
// skipped (down or loopback).
func parseLinkMsg(data []byte) (model.InterfaceStats, bool, error) {
	var stats model.InterfaceStats

	hdrLen := int(unsafe.Sizeof(ifInfoMsg{}))
	if len(data) < hdrLen {
		return stats, false, fmt.Errorf("link message too short: %d", len(data))
	}
	info := (*ifInfoMsg)(unsafe.Pointer(&data[0]))
	if info.Flags&iffLoopback != 0 || info.Flags&iffUp == 0 {
		return stats, false, nil
	}

	attrs, err := netlink.UnmarshalAttributes(data[hdrLen:])
	if err != nil {
		return stats, false, err
	}

	var have32, have64 bool
	for _, attr := range attrs {
		switch int(attr.Type) {
		case iflaIfname:
			// Null-terminated interface name.
			name := attr.Data
			if n := len(name); n > 0 && name[n-1] == 0 {
				name = name[:n-1]
			}
			stats.Name = string(name)
		case iflaStats64:
			// struct rtnl_link_stats64: rx_bytes at offset 16,
			// tx_bytes at offset 24, both uint64.
			if len(attr.Data) >= 32 {
				stats.BytesRecv = binary.LittleEndian.Uint64(attr.Data[16:24])
				stats.BytesSent = binary.LittleEndian.Uint64(attr.Data[24:32])
				have64 = true
			}
		case iflaStats:
			// struct rtnl_link_stats: rx_bytes at offset 8,
			// tx_bytes at offset 12, both uint32. Used only when the
			// kernel does not provide the 64-bit variant.
			if len(attr.Data) >= 16 && !have64 {
				stats.BytesRecv = uint64(binary.LittleEndian.Uint32(attr.Data[8:12]))
				stats.BytesSent = uint64(binary.LittleEndian.Uint32(attr.Data[12:16]))
				have32 = true
			}
		}
	}

	if stats.Name == "" || (!have32 && !have64) {
		return stats, false, nil
	}
	return stats, true, nil
}

// isNetlinkUnavailable reports whether the error means the route socket can
// no longer serve link dumps (rather than a transient failure).
func isNetlinkUnavailable(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ENOENT || errno == syscall.EPERM
	}
	var opErr *netlink.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ENOENT) || errors.Is(opErr.Err, syscall.EPERM)
	}
	return false
}
