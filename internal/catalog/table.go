package catalog

// endpointTable is the static documentation metadata for the IQM API
// surface. Entries are keyed by (method, path) and grouped by category;
// schemas follow the OpenAPI property-map convention.
func endpointTable() []Endpoint {
	var table []Endpoint
	table = append(table, campaignEndpoints()...)
	table = append(table, reportEndpoints()...)
	table = append(table, audienceEndpoints()...)
	table = append(table, creativeEndpoints()...)
	table = append(table, conversionEndpoints()...)
	table = append(table, inventoryEndpoints()...)
	table = append(table, dashboardEndpoints()...)
	return table
}

func obj(props map[string]any) map[string]any {
	return map[string]any{"type": "object", "properties": props}
}

func objReq(required []string, props map[string]any) map[string]any {
	return map[string]any{"type": "object", "required": required, "properties": props}
}

func typ(t string) map[string]any { return map[string]any{"type": t} }

func arr(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func pathParam(name, t, desc string) map[string]any {
	p := map[string]any{"name": name, "in": "path", "type": t, "required": true}
	if desc != "" {
		p["description"] = desc
	}
	return p
}

func campaignEndpoints() []Endpoint {
	return []Endpoint{
		{
			Path:        "/api/v3/campaign",
			Method:      "POST",
			Summary:     "Create a new campaign",
			Description: "Creates a new advertising campaign with specified targeting, budget, and creative settings.",
			Category:    "campaigns",
			DocPage:     "/guidelines/campaign-api#create-a-campaign",
			Tags:        []string{"campaign", "create"},
			RequestBody: objReq(
				[]string{"campaignName", "advertiserId", "startDate", "endDate", "budgetTotal"},
				map[string]any{
					"campaignName":   map[string]any{"type": "string", "description": "Name of the campaign"},
					"advertiserId":   map[string]any{"type": "integer", "description": "Advertiser/customer ID"},
					"startDate":      map[string]any{"type": "string", "format": "date", "description": "Campaign start date"},
					"endDate":        map[string]any{"type": "string", "format": "date", "description": "Campaign end date"},
					"budgetTotal":    map[string]any{"type": "number", "description": "Total campaign budget in dollars"},
					"budgetDay":      map[string]any{"type": "number", "description": "Daily budget cap"},
					"maxBid":         map[string]any{"type": "number", "description": "Maximum bid price"},
					"campaignTypeId": map[string]any{"type": "integer", "description": "Campaign type (1=standard, 14=PG)"},
					"creativeIds":    arr(typ("integer")),
					"audienceIds":    arr(typ("integer")),
				},
			),
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data": obj(map[string]any{
					"campaignId":     typ("integer"),
					"campaignStatus": typ("string"),
				}),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/campaign/{id}",
			Method:      "GET",
			Summary:     "Get campaign details",
			Description: "Retrieves detailed information about a specific campaign including targeting, budget, and performance data.",
			Category:    "campaigns",
			DocPage:     "/guidelines/campaign-api#get-campaign-details",
			Tags:        []string{"campaign", "read", "details"},
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"responseObject": obj(map[string]any{
					"campaignId":     typ("integer"),
					"campaignName":   typ("string"),
					"campaignStatus": typ("string"),
					"startDate":      typ("string"),
					"endDate":        typ("string"),
					"budgetTotal":    typ("number"),
					"spent":          typ("number"),
				}),
			}),
			Parameters:   []any{pathParam("id", "integer", "Campaign ID")},
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/campaign/basic/list",
			Method:      "POST",
			Summary:     "List campaigns with filters",
			Description: "Retrieves a paginated list of campaigns with optional filtering by status, date range, and search terms.",
			Category:    "campaigns",
			DocPage:     "/guidelines/campaign-api#get-campaign-list",
			Tags:        []string{"campaign", "list", "search"},
			RequestBody: obj(map[string]any{
				"status":      map[string]any{"type": "string", "enum": []any{"running", "paused", "pending", "expired", "deleted"}},
				"searchField": typ("string"),
				"pageNo":      map[string]any{"type": "integer", "default": 1},
				"pageSize":    map[string]any{"type": "integer", "default": 25},
				"sortBy":      typ("string"),
				"sortOrder":   map[string]any{"type": "string", "enum": []any{"asc", "desc"}},
			}),
			ResponseBody: obj(map[string]any{
				"data":            arr(typ("object")),
				"totalRecords":    typ("integer"),
				"filteredRecords": typ("integer"),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/campaign/budget",
			Method:      "PATCH",
			Summary:     "Update campaign budget",
			Description: "Updates the total budget, daily budget, or max bid for one or more campaigns.",
			Category:    "campaigns",
			DocPage:     "/guidelines/campaign-api#update-campaign-budget",
			Tags:        []string{"campaign", "update", "budget"},
			RequestBody: objReq(
				[]string{"campaignIds"},
				map[string]any{
					"campaignIds":           map[string]any{"type": "string", "description": "Comma-separated campaign IDs"},
					"totalBudget":           typ("number"),
					"dailyBudget":           typ("number"),
					"maxBid":                typ("number"),
					"totalBudgetUpdateType": map[string]any{"type": "string", "enum": []any{"change", "addition", "distribution"}},
				},
			),
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"message": typ("string"),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/campaign/status",
			Method:      "PUT",
			Summary:     "Update campaign status",
			Description: "Changes the status of one or more campaigns (pause, resume, delete).",
			Category:    "campaigns",
			DocPage:     "/guidelines/campaign-api#update-campaign-status",
			Tags:        []string{"campaign", "update", "status"},
			RequestBody: objReq(
				[]string{"campaignIds", "status"},
				map[string]any{
					"campaignIds": map[string]any{"type": "string", "description": "Comma-separated campaign IDs"},
					"status":      map[string]any{"type": "string", "enum": []any{"running", "paused", "deleted"}},
				},
			),
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data":    arr(typ("object")),
			}),
			RequiresAuth: true,
		},
	}
}

func reportEndpoints() []Endpoint {
	return []Endpoint{
		{
			Path:        "/api/v3/ra/report/execute",
			Method:      "POST",
			Summary:     "Execute a report",
			Description: "Generates a report based on specified dimensions, metrics, and filters.",
			Category:    "reports",
			DocPage:     "/guidelines/reports-api#execute-report",
			Tags:        []string{"report", "execute", "analytics"},
			RequestBody: objReq(
				[]string{"startDate", "endDate", "dimensions", "metrics"},
				map[string]any{
					"startDate":   map[string]any{"type": "string", "format": "date"},
					"endDate":     map[string]any{"type": "string", "format": "date"},
					"dimensions":  arr(typ("string")),
					"metrics":     arr(typ("string")),
					"campaignIds": arr(typ("integer")),
					"timezoneId":  typ("integer"),
					"pageNo":      typ("integer"),
					"pageSize":    typ("integer"),
				},
			),
			ResponseBody: obj(map[string]any{
				"reportData":   typ("array"),
				"totalRecords": typ("integer"),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/ra/report/schedule",
			Method:      "POST",
			Summary:     "Schedule a recurring report",
			Description: "Creates a scheduled report that runs automatically at specified intervals.",
			Category:    "reports",
			DocPage:     "/guidelines/reports-api#schedule-report",
			Tags:        []string{"report", "schedule", "automation"},
			RequestBody: objReq(
				[]string{"reportName", "startDate", "endDate", "dimensions", "metrics", "frequency"},
				map[string]any{
					"reportName":      typ("string"),
					"frequency":       map[string]any{"type": "string", "enum": []any{"daily", "weekly", "monthly"}},
					"emailRecipients": arr(typ("string")),
					"format":          map[string]any{"type": "string", "enum": []any{"csv", "xlsx"}},
				},
			),
			ResponseBody: obj(map[string]any{
				"success":    typ("boolean"),
				"scheduleId": typ("integer"),
			}),
			RequiresAuth: true,
		},
	}
}

func audienceEndpoints() []Endpoint {
	return []Endpoint{
		{
			Path:        "/api/v2/audience/matched/add",
			Method:      "POST",
			Summary:     "Upload a matched audience",
			Description: "Creates a new matched audience by uploading hashed identifiers (emails, MAIDs, etc.).",
			Category:    "audiences",
			DocPage:     "/guidelines/audience-api#upload-matched-audience",
			Tags:        []string{"audience", "matched", "upload"},
			RequestBody: map[string]any{
				"type": "multipart/form-data",
				"properties": map[string]any{
					"audienceName":  typ("string"),
					"audienceFile":  map[string]any{"type": "file", "description": "CSV file with hashed identifiers"},
					"columnMapping": map[string]any{"type": "array", "description": "Mapping of columns to identifier types"},
				},
			},
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data": obj(map[string]any{
					"audienceId": typ("integer"),
					"matchRate":  typ("number"),
				}),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/audience/contextual/create",
			Method:      "POST",
			Summary:     "Create a contextual audience",
			Description: "Creates a new contextual audience based on keywords, topics, or URL patterns.",
			Category:    "audiences",
			DocPage:     "/guidelines/audience-api#create-contextual-audience",
			Tags:        []string{"audience", "contextual", "create"},
			RequestBody: objReq(
				[]string{"audienceName", "keywords"},
				map[string]any{
					"audienceName": typ("string"),
					"keywords":     arr(typ("string")),
					"topics":       arr(typ("integer")),
					"urlPatterns":  arr(typ("string")),
				},
			),
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data":    obj(map[string]any{"audienceId": typ("integer")}),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v2/audience/search",
			Method:      "POST",
			Summary:     "Search and list audiences",
			Description: "Retrieves a paginated list of audiences with optional filtering.",
			Category:    "audiences",
			DocPage:     "/guidelines/audience-api#list-audiences",
			Tags:        []string{"audience", "list", "search"},
			RequestBody: obj(map[string]any{
				"audienceTypeIds": arr(typ("integer")),
				"statusIds":       arr(typ("integer")),
				"searchField":     typ("string"),
				"pageNo":          typ("integer"),
				"pageSize":        typ("integer"),
			}),
			ResponseBody: obj(map[string]any{
				"data":         typ("array"),
				"totalRecords": typ("integer"),
			}),
			RequiresAuth: true,
		},
	}
}

func creativeEndpoints() []Endpoint {
	return []Endpoint{
		{
			Path:        "/api/v3/creative/add",
			Method:      "POST",
			Summary:     "Upload a creative asset",
			Description: "Uploads a new creative asset (image, video, HTML5, native, or audio).",
			Category:    "creatives",
			DocPage:     "/guidelines/creative-api#upload-creative",
			Tags:        []string{"creative", "upload", "asset"},
			RequestBody: map[string]any{
				"type":     "multipart/form-data",
				"required": []string{"creativeName", "creativeTypeId"},
				"properties": map[string]any{
					"creativeName":   typ("string"),
					"creativeTypeId": map[string]any{"type": "integer", "description": "11=image, 13=video, 14=HTML5, 15=native, 17=audio"},
					"creativeFile":   typ("file"),
					"clickUrl":       typ("string"),
					"width":          typ("integer"),
					"height":         typ("integer"),
				},
			},
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data": obj(map[string]any{
					"creativeId":     typ("integer"),
					"creativeStatus": typ("string"),
				}),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/creative/{id}",
			Method:      "GET",
			Summary:     "Get creative details",
			Description: "Retrieves detailed information about a specific creative asset.",
			Category:    "creatives",
			DocPage:     "/guidelines/creative-api#get-creative-details",
			Tags:        []string{"creative", "read", "details"},
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data": obj(map[string]any{
					"creativeId":     typ("integer"),
					"creativeName":   typ("string"),
					"creativeTypeId": typ("integer"),
					"status":         typ("string"),
					"width":          typ("integer"),
					"height":         typ("integer"),
					"clickUrl":       typ("string"),
				}),
			}),
			Parameters:   []any{pathParam("id", "integer", "")},
			RequiresAuth: true,
		},
		{
			Path:        "/api/v2/creative/list",
			Method:      "POST",
			Summary:     "List creative assets",
			Description: "Retrieves a paginated list of creative assets with optional filtering.",
			Category:    "creatives",
			DocPage:     "/guidelines/creative-api#list-creatives",
			Tags:        []string{"creative", "list", "search"},
			RequestBody: obj(map[string]any{
				"creativeTypeIds": arr(typ("integer")),
				"statusIds":       arr(typ("integer")),
				"searchField":     typ("string"),
				"pageNo":          typ("integer"),
				"pageSize":        typ("integer"),
			}),
			ResponseBody: obj(map[string]any{
				"data":         typ("array"),
				"totalRecords": typ("integer"),
			}),
			RequiresAuth: true,
		},
	}
}

func conversionEndpoints() []Endpoint {
	return []Endpoint{
		{
			Path:        "/api/v3/conversion/add",
			Method:      "POST",
			Summary:     "Create a conversion tracker",
			Description: "Creates a new conversion tracking pixel or postback.",
			Category:    "conversions",
			DocPage:     "/guidelines/conversion-api#create-conversion",
			Tags:        []string{"conversion", "tracking", "create"},
			RequestBody: objReq(
				[]string{"conversionName", "conversionTypeId"},
				map[string]any{
					"conversionName":        typ("string"),
					"conversionTypeId":      map[string]any{"type": "integer", "description": "1=pixel, 2=postback"},
					"advertiserDomain":      typ("string"),
					"attributionWindow":     map[string]any{"type": "integer", "description": "Days for click attribution"},
					"viewAttributionWindow": map[string]any{"type": "integer", "description": "Days for view attribution"},
				},
			),
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data": obj(map[string]any{
					"conversionId": typ("integer"),
					"pixelCode":    typ("string"),
				}),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/conversion/{id}",
			Method:      "GET",
			Summary:     "Get conversion details",
			Description: "Retrieves detailed information about a conversion tracker.",
			Category:    "conversions",
			DocPage:     "/guidelines/conversion-api#get-conversion-details",
			Tags:        []string{"conversion", "read", "details"},
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data": obj(map[string]any{
					"conversionId":     typ("integer"),
					"conversionName":   typ("string"),
					"pixelCode":        typ("string"),
					"totalConversions": typ("integer"),
				}),
			}),
			Parameters:   []any{pathParam("id", "integer", "")},
			RequiresAuth: true,
		},
	}
}

func inventoryEndpoints() []Endpoint {
	return []Endpoint{
		{
			Path:        "/api/v2/inv/pmp/deal/list",
			Method:      "POST",
			Summary:     "List PMP deals",
			Description: "Retrieves a list of available Private Marketplace deals.",
			Category:    "inventory",
			DocPage:     "/guidelines/inventory-api#list-pmp-deals",
			Tags:        []string{"inventory", "pmp", "deals", "list"},
			RequestBody: obj(map[string]any{
				"searchField": typ("string"),
				"statusIds":   arr(typ("integer")),
				"pageNo":      typ("integer"),
				"pageSize":    typ("integer"),
			}),
			ResponseBody: obj(map[string]any{
				"data":         typ("array"),
				"totalRecords": typ("integer"),
			}),
			RequiresAuth: true,
		},
		{
			Path:        "/api/v3/inv/group/add",
			Method:      "POST",
			Summary:     "Create inventory group",
			Description: "Creates a new inventory group for organizing and targeting inventory.",
			Category:    "inventory",
			DocPage:     "/guidelines/inventory-api#create-inventory-group",
			Tags:        []string{"inventory", "group", "create"},
			RequestBody: objReq(
				[]string{"groupName", "inventoryGroupTypeId"},
				map[string]any{
					"groupName":            typ("string"),
					"inventoryGroupTypeId": typ("integer"),
					"inventoryIds":         arr(typ("integer")),
				},
			),
			ResponseBody: obj(map[string]any{
				"success": typ("boolean"),
				"data":    obj(map[string]any{"groupId": typ("integer")}),
			}),
			RequiresAuth: true,
		},
	}
}

func dashboardEndpoints() []Endpoint {
	return []Endpoint{
		{
			Path:        "/api/v2/rb/resultDashboard",
			Method:      "POST",
			Summary:     "Get dashboard performance data",
			Description: "Retrieves aggregated performance metrics for the dashboard view.",
			Category:    "dashboard",
			DocPage:     "/guidelines/dashboard-api#get-dashboard-data",
			Tags:        []string{"dashboard", "metrics", "performance"},
			RequestBody: objReq(
				[]string{"dateRange"},
				map[string]any{
					"dateRange": obj(map[string]any{
						"startDate": typ("string"),
						"endDate":   typ("string"),
					}),
					"dimension": obj(map[string]any{
						"filter": typ("object"),
						"value":  typ("array"),
					}),
					"timezone":    typ("object"),
					"campaignIds": typ("array"),
					"sortBy":      typ("string"),
					"sortType":    typ("string"),
				},
			),
			ResponseBody: obj(map[string]any{
				"data":         typ("array"),
				"totalRecords": typ("integer"),
				"aggregations": typ("object"),
			}),
			RequiresAuth: true,
		},
	}
}
