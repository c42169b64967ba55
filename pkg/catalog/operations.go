package catalog

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Operations is the static catalog of Vantage Cloud API operations, loaded
// once at process start and never mutated. Order is preserved for listings.
var Operations = []Operation{
	{
		Group:       "site",
		Action:      "list",
		OperationId: "listSites",
		Method:      "GET",
		Path:        "/sites",
		Description: "List all sites visible to the caller",
		Paginatable: true,
	},
	{
		Group:       "site",
		Action:      "get",
		OperationId: "getSite",
		Method:      "GET",
		Path:        "/sites/{siteId}",
		Description: "Return a single site",
		NeedsSite:   true,
	},
	{
		Group:       "device",
		Action:      "list",
		OperationId: "listDevices",
		Method:      "GET",
		Path:        "/sites/{siteId}/devices",
		Description: "List the devices adopted by a site",
		NeedsSite:   true,
		Paginatable: true,
		Query: []QueryParam{
			{Name: "device_type", Description: "Filter by device type (gateway, switch, ap)"},
			{Name: "status", Description: "Filter by device status (online, offline, updating)"},
		},
	},
	{
		Group:       "device",
		Action:      "get",
		OperationId: "getDevice",
		Method:      "GET",
		Path:        "/sites/{siteId}/devices/{deviceId}",
		Description: "Return a single device",
		NeedsSite:   true,
		Args: []Arg{
			{Name: "deviceId", Description: "The device identifier"},
		},
	},
	{
		Group:       "device",
		Action:      "restart",
		OperationId: "restartDevice",
		Method:      "POST",
		Path:        "/sites/{siteId}/devices/{deviceId}/restart",
		Description: "Restart a device",
		NeedsSite:   true,
		Args: []Arg{
			{Name: "deviceId", Description: "The device identifier"},
		},
	},
	{
		Group:       "device",
		Action:      "set",
		OperationId: "updateDevice",
		Method:      "PUT",
		Path:        "/sites/{siteId}/devices/{deviceId}",
		Description: "Update device settings",
		NeedsSite:   true,
		HasBody:     true,
		Args: []Arg{
			{Name: "deviceId", Description: "The device identifier"},
		},
	},
	{
		Group:       "device",
		Action:      "upgrade",
		OperationId: "upgradeDevice",
		Method:      "POST",
		Path:        "/sites/{siteId}/devices/{deviceId}/upgrade",
		Description: "Start a firmware upgrade on a device",
		NeedsSite:   true,
		HasBody:     true,
		Args: []Arg{
			{Name: "deviceId", Description: "The device identifier"},
		},
	},
	{
		Group:       "client",
		Action:      "list",
		OperationId: "listClients",
		Method:      "GET",
		Path:        "/sites/{siteId}/clients",
		Description: "List the network clients seen by a site",
		NeedsSite:   true,
		Paginatable: true,
		Query: []QueryParam{
			{Name: "connected_only", Description: "Only return currently connected clients"},
		},
	},
	{
		Group:       "client",
		Action:      "block",
		OperationId: "blockClient",
		Method:      "POST",
		Path:        "/sites/{siteId}/clients/{clientId}/block",
		Description: "Block a network client",
		NeedsSite:   true,
		Args: []Arg{
			{Name: "clientId", Description: "The client identifier or MAC address"},
		},
	},
	{
		Group:       "client",
		Action:      "unblock",
		OperationId: "unblockClient",
		Method:      "POST",
		Path:        "/sites/{siteId}/clients/{clientId}/unblock",
		Description: "Unblock a network client",
		NeedsSite:   true,
		Args: []Arg{
			{Name: "clientId", Description: "The client identifier or MAC address"},
		},
	},
	{
		Group:       "alert",
		Action:      "list",
		OperationId: "listAlerts",
		Method:      "GET",
		Path:        "/sites/{siteId}/alerts",
		Description: "List the alerts raised for a site",
		NeedsSite:   true,
		Paginatable: true,
		Query: []QueryParam{
			{Name: "severity", Description: "Filter by severity (info, warning, critical)"},
			{Name: "acknowledged", Description: "Filter by acknowledged state (true, false)"},
		},
	},
	{
		Group:       "alert",
		Action:      "ack",
		OperationId: "ackAlert",
		Method:      "POST",
		Path:        "/sites/{siteId}/alerts/{alertId}/ack",
		Description: "Acknowledge an alert",
		NeedsSite:   true,
		Args: []Arg{
			{Name: "alertId", Description: "The alert identifier"},
		},
	},
	{
		Group:       "firmware",
		Action:      "list",
		OperationId: "listFirmware",
		Method:      "GET",
		Path:        "/sites/{siteId}/firmware",
		Description: "List available firmware updates for a site",
		NeedsSite:   true,
		Paginatable: true,
	},
	{
		Action:      "info",
		OperationId: "getInfo",
		Method:      "GET",
		Path:        "/info",
		Description: "Return controller version and licensing information",
	},
}
