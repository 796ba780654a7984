package metrics

import (
	"os"
	"strconv"
	"time"

	"github.com/influxdata/influxdb/client/v2"

	"github.com/kartarena/kartarena/common/utils"
)

type Client struct {
	isStub bool

	batchpointsClient client.BatchPoints
	appName           string
	influxdbClient    client.Client
	tickerChannel     *time.Ticker
}

func createHttpClient(addr string) (client.Client, error) {
	return client.NewHTTPClient(client.HTTPConfig{
		Addr: addr,
	})
}

func createBatchPoints(db string) (client.BatchPoints, error) {
	return client.NewBatchPoints(client.BatchPointsConfig{
		Database: db,
	})
}

// NewClient configures influxdb reporting from the INFLUXDB_ADDR and
// INFLUXDB_DB environment variables; when both are unset a stub client is
// returned that routes metrics to the debug log instead.
func NewClient(appName string) (*Client, error) {
	influxdbAddr := os.Getenv("INFLUXDB_ADDR")
	influxdbDb := os.Getenv("INFLUXDB_DB")

	tickerChannel := time.NewTicker(5 * time.Second)

	stubClient := &Client{
		isStub: true,

		tickerChannel: tickerChannel,
		appName:       appName,
	}

	if influxdbAddr == "" && influxdbDb == "" {
		utils.Debug("metrics", "No influxdb client has been configured")
		return stubClient, nil
	}

	influxdbClient, clientErr := createHttpClient(influxdbAddr)

	if clientErr != nil {
		return stubClient, clientErr
	}

	batchpointsClient, batchpointsErr := createBatchPoints(influxdbDb)

	if batchpointsErr != nil {
		return stubClient, batchpointsErr
	}

	utils.Debug("metrics", "Influxdb reporting is enabled")

	return &Client{
		isStub: false,

		influxdbClient:    influxdbClient,
		batchpointsClient: batchpointsClient,
		tickerChannel:     tickerChannel,
		appName:           appName,
	}, nil
}

func (c *Client) WriteAppMetric(name string, fields map[string]interface{}) {
	if c.isStub {
		str := name + ":"

		for k, v := range fields {
			if vi, isInt := v.(int); isInt {
				str += " " + k + "=" + strconv.Itoa(vi)
			}
		}

		utils.Debug("metrics-debug", str)
		return
	}

	tags := map[string]string{"app": c.appName}

	pt, err := client.NewPoint(name, tags, fields, time.Now())

	if err != nil {
		panic(err.Error())
	}

	c.batchpointsClient.AddPoint(pt)
	c.influxdbClient.Write(c.batchpointsClient)
}

func (c *Client) Loop(fn func()) {
	go func() {
		for {
			<-c.tickerChannel.C

			fn()
		}
	}()
}

func (c *Client) TearDown() {
	c.tickerChannel.Stop()
}
