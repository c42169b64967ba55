package main

import (
	"encoding/json"
	"fmt"

	// Packages
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	table "github.com/perimeterlabs/vantage/pkg/ui/table"
	vantageapi "github.com/perimeterlabs/vantage/pkg/vantageapi"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type SitesCmd struct{}

type DevicesCmd struct {
	Site string `arg:"" optional:"" help:"Site identifier, canonical or symbolic"`
}

type sitesTable []vantageapi.Site
type devicesTable []vantageapi.Device

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (*SitesCmd) Run(ctx *Globals) error {
	e, err := ctx.Engine()
	if err != nil {
		return err
	}
	response, err := e.Call(ctx.ctx, "site_list", catalog.Params{})
	if err != nil {
		return err
	}

	var result struct {
		Data       []vantageapi.Site `json:"data"`
		TotalCount int               `json:"totalCount"`
	}
	if err := json.Unmarshal(response, &result); err != nil {
		return err
	}
	fmt.Println(table.Render(sitesTable(result.Data)))
	fmt.Println(table.Summary(len(result.Data), result.TotalCount))
	return nil
}

func (cmd *DevicesCmd) Run(ctx *Globals) error {
	e, err := ctx.Engine()
	if err != nil {
		return err
	}
	site := cmd.Site
	if site == "" {
		site = ctx.config.Site
	}
	response, err := e.Call(ctx.ctx, "device_list", catalog.Params{Site: site})
	if err != nil {
		return err
	}

	var result struct {
		Data       []vantageapi.Device `json:"data"`
		TotalCount int                 `json:"totalCount"`
	}
	if err := json.Unmarshal(response, &result); err != nil {
		return err
	}
	fmt.Println(table.Render(devicesTable(result.Data)))
	fmt.Println(table.Summary(len(result.Data), result.TotalCount))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// TABLE DATA

func (t sitesTable) Header() []string {
	return []string{"Id", "Reference", "Name", "Timezone", "Devices"}
}

func (t sitesTable) Len() int {
	return len(t)
}

func (t sitesTable) Row(i int) []any {
	site := t[i]
	return []any{site.Id, site.InternalReference, site.Name, site.Timezone, site.DeviceCount}
}

func (t devicesTable) Header() []string {
	return []string{"Id", "Name", "Model", "Type", "MAC", "IP", "Status", "Last Seen"}
}

func (t devicesTable) Len() int {
	return len(t)
}

func (t devicesTable) Row(i int) []any {
	device := t[i]
	return []any{device.Id, device.Name, device.Model, device.DeviceType, device.MacAddress, device.IpAddress, device.Status, device.LastSeen}
}
