package video

import (
	"github.com/shirou/gopsutil/v4/mem"
)

// DefaultMemoryFraction is the share of available system memory a single
// read may allocate.
const DefaultMemoryFraction = 0.9

// MemoryProbe reports the currently available system memory in bytes.
type MemoryProbe func() (uint64, error)

// SystemMemory reads available memory from the operating system.
func SystemMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}
