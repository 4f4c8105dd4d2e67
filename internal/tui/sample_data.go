// Package tui implements the linutil terminal user interface.
package tui

import "github.com/nnyyxxxx/linutil/internal/tui/components"

func dir(name string) components.Entry {
	return components.Entry{Name: name, Kind: components.EntryDirectory}
}

func cmd(name string) components.Entry {
	return components.Entry{Name: name, Kind: components.EntryCommand}
}

func sampleTabs() []components.Tab {
	return []components.Tab{
		{
			Name: "System Setup",
			Entries: []components.Entry{
				dir("Arch Linux"),
				dir("Fedora"),
				cmd("Build Prerequisites"),
				cmd("Full System Cleanup"),
				cmd("Full System Update"),
				cmd("Gaming Dependencies"),
				cmd("Global Theme"),
				cmd("Remove Snaps"),
			},
		},
		{
			Name: "Applications Setup",
			Entries: []components.Entry{
				dir("Browsers"),
				dir("Developer Tools"),
				cmd("Alacritty"),
				cmd("Kitty"),
				cmd("Neovim"),
				cmd("Rofi"),
			},
		},
		{
			Name: "Security",
			Entries: []components.Entry{
				cmd("Firewall Baselines"),
			},
		},
		{
			Name: "Utilities",
			Entries: []components.Entry{
				dir("Monitor Control"),
				cmd("Bluetooth Manager"),
				cmd("Numlock on Startup"),
				cmd("WiFi Manager"),
			},
		},
	}
}
