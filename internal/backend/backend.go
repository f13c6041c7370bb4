// Package backend is the evdev driver layer: it scans /dev/input,
// classifies devices by capability, announces them to the input
// manager, and pumps their hardware events into the device signals.
//
// Readers run one goroutine per open device, but every device and
// event operation is funneled through the Run loop goroutine, so the
// input layer above sees a strictly single-threaded event stream.
package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	evdev "github.com/holoplot/go-evdev"

	"github.com/wayseat/wayseat/internal/device"
	"github.com/wayseat/wayseat/internal/input"
	"github.com/wayseat/wayseat/internal/logger"
)

// Backend owns the evdev devices and the event loop.
type Backend struct {
	mgr *input.Manager
	dir string
	log *log.Logger

	// tasks carries closures posted by reader goroutines; they execute
	// on the Run loop only.
	tasks   chan func()
	devices map[string]*attachedDevice
}

type attachedDevice struct {
	path       string
	dev        *device.Device
	raw        *evdev.InputDevice
	translator *translator
}

// Option configures a Backend.
type Option func(*Backend)

// WithDeviceDir overrides the /dev/input scan directory.
func WithDeviceDir(dir string) Option {
	return func(b *Backend) { b.dir = dir }
}

// New creates a backend that announces devices to mgr.
func New(mgr *input.Manager, opts ...Option) *Backend {
	b := &Backend{
		mgr:     mgr,
		dir:     "/dev/input",
		log:     logger.WithPrefix("backend"),
		tasks:   make(chan func(), 256),
		devices: make(map[string]*attachedDevice),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run attaches the devices already present, then processes hot-plug
// and hardware events until the context is cancelled. This goroutine
// is the event loop: every device notification and every event
// delivery happens here.
func (b *Backend) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create device watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(b.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", b.dir, err)
	}

	b.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			b.detachAll()
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				b.detachAll()
				return nil
			}
			if !isEventNode(ev.Name) {
				continue
			}
			switch {
			case ev.Op.Has(fsnotify.Create):
				b.attach(ctx, ev.Name)
			case ev.Op.Has(fsnotify.Remove):
				b.detach(ev.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				b.detachAll()
				return nil
			}
			b.log.Warn("device watcher error", "err", err)
		case task := <-b.tasks:
			task()
		}
	}
}

// scan attaches every event node already present.
func (b *Backend) scan(ctx context.Context) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		b.log.Warn("failed to list input devices", "dir", b.dir, "err", err)
		return
	}
	for _, p := range paths {
		b.attach(ctx, p.Path)
	}
}

func (b *Backend) attach(ctx context.Context, path string) {
	if _, exists := b.devices[path]; exists {
		return
	}

	raw, err := evdev.Open(path)
	if err != nil {
		b.log.Debug("cannot open device", "path", path, "err", err)
		return
	}

	name, err := raw.Name()
	if err != nil || name == "" {
		name = filepath.Base(path)
	}

	typ, ok := classify(readCapabilities(raw))
	if !ok {
		b.log.Debug("skipping unclassifiable device", "path", path, "name", name)
		raw.Close()
		return
	}

	// Axis ranges are needed to normalize absolute coordinates; devices
	// without absolute axes simply have none.
	abs, err := raw.AbsInfos()
	if err != nil {
		abs = nil
	}

	dev := device.New(typ, name)
	ad := &attachedDevice{
		path:       path,
		dev:        dev,
		raw:        raw,
		translator: newTranslator(dev, abs),
	}
	b.devices[path] = ad

	b.log.Info("device attached", "path", path, "name", name, "type", typ.String())
	b.mgr.AddDevice(dev)

	go b.readLoop(ctx, ad)
}

// readLoop pulls raw events off the device and posts them to the Run
// loop. A read error means the device went away.
func (b *Backend) readLoop(ctx context.Context, ad *attachedDevice) {
	for {
		ev, err := ad.raw.ReadOne()
		if err != nil {
			select {
			case b.tasks <- func() { b.detach(ad.path) }:
			case <-ctx.Done():
			}
			return
		}
		raw := *ev
		select {
		case b.tasks <- func() { ad.translator.dispatch(raw) }:
		case <-ctx.Done():
			return
		}
	}
}

func (b *Backend) detach(path string) {
	ad, exists := b.devices[path]
	if !exists {
		return
	}
	delete(b.devices, path)
	b.log.Info("device detached", "path", path, "name", ad.dev.Name())
	ad.raw.Close()
	ad.dev.Destroy()
}

func (b *Backend) detachAll() {
	for path := range b.devices {
		b.detach(path)
	}
}

func isEventNode(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "event")
}

// DeviceInfo describes one classified device, for listings.
type DeviceInfo struct {
	Path string
	Name string
	Type device.Type
}

// ListDevices scans a device directory once and classifies everything
// it can open. Used by the devices command; does not attach anything.
func ListDevices() ([]DeviceInfo, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	var infos []DeviceInfo
	for _, p := range paths {
		raw, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		typ, ok := classify(readCapabilities(raw))
		raw.Close()
		if !ok {
			continue
		}
		infos = append(infos, DeviceInfo{Path: p.Path, Name: p.Name, Type: typ})
	}
	return infos, nil
}
