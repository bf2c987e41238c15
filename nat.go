package main

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/libp2p/go-nat"
	"github.com/sirupsen/logrus"
)

// NATTraversal maps the API port on the local gateway via UPnP or NAT-PMP
type NATTraversal struct {
	nat      nat.NAT
	port     int
	logger   *logrus.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NATConfig holds configuration for NAT traversal
type NATConfig struct {
	InternalPort  int
	Description   string
	LeaseDuration time.Duration
}

// NewNATTraversal creates a new NAT traversal handler
func NewNATTraversal(logger *logrus.Logger) *NATTraversal {
	return &NATTraversal{
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// natConfigFor derives the mapping for the listen address
func natConfigFor(address string, settings NATSettings) (NATConfig, error) {
	_, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return NATConfig{}, fmt.Errorf("parse listen address: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return NATConfig{}, fmt.Errorf("parse listen port: %w", err)
	}
	return NATConfig{
		InternalPort:  port,
		LeaseDuration: settings.Lease,
	}, nil
}

// Setup attempts to configure port forwarding using UPnP or NAT-PMP
// Returns the external address (ip:port) if successful
func (n *NATTraversal) Setup(ctx context.Context, config NATConfig) (string, error) {
	if config.Description == "" {
		config.Description = "saju-lab API"
	}
	if config.LeaseDuration == 0 {
		config.LeaseDuration = 2 * time.Hour
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Discover NAT gateway (tries UPnP then NAT-PMP automatically)
	gateway, err := nat.DiscoverGateway(ctx)
	if err != nil {
		return "", fmt.Errorf("no NAT gateway found: %w", err)
	}

	n.nat = gateway
	n.port = config.InternalPort

	extIP, err := gateway.GetExternalAddress()
	if err != nil {
		return "", fmt.Errorf("failed to get external address: %w", err)
	}

	mapped, err := gateway.AddPortMapping(ctx, "tcp", config.InternalPort, config.Description, config.LeaseDuration)
	if err != nil {
		return "", fmt.Errorf("failed to add port mapping: %w", err)
	}

	n.wg.Add(1)
	go n.renewLoop(config.InternalPort, config.Description, config.LeaseDuration)

	return net.JoinHostPort(extIP.String(), strconv.Itoa(mapped)), nil
}

// renewLoop renews the mapping at half the lease duration
func (n *NATTraversal) renewLoop(internalPort int, description string, leaseDuration time.Duration) {
	defer n.wg.Done()
	ticker := time.NewTicker(leaseDuration / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			_, err := n.nat.AddPortMapping(ctx, "tcp", internalPort, description, leaseDuration)
			cancel()
			if err != nil {
				n.logger.WithError(err).Warn("NAT: failed to renew port mapping")
			}
		case <-n.stopChan:
			return
		}
	}
}

// Close removes the port mapping and stops the renewal loop
func (n *NATTraversal) Close() {
	close(n.stopChan)
	n.wg.Wait()
	if n.nat != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := n.nat.DeletePortMapping(ctx, "tcp", n.port); err != nil {
			n.logger.WithError(err).Warn("NAT: failed to remove port mapping")
		}
	}
}

// GetProtocol returns the NAT traversal method being used ("UPnP" or "NAT-PMP")
func (n *NATTraversal) GetProtocol() string {
	if n.nat != nil {
		return n.nat.Type()
	}
	return "unknown"
}
