package models

// Instance is the opaque result of the host-metadata provider.
type Instance struct {
	Name string
	PID  int
}

// HostInfo converts the instance into the shape stored on a [Configuration].
func (i Instance) HostInfo() HostInfo {
	return HostInfo{Hostname: i.Name, PID: i.PID}
}
