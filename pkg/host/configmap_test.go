package host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func errorIsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func newConfigMap(namespace, name string, data map[string]string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name},
		Data:       data,
	}
}

func TestConfigMap(t *testing.T) {
	cs := fake.NewClientset(
		newConfigMap("minecraft", "server", map[string]string{
			DefaultConfigMapKey: "1.20.4\n",
			"branded":           "git-Paper-496 (MC: 1.20.6)",
		}),
	)

	tests := []struct {
		name    string
		ns      string
		cm      string
		key     string
		want    string
		unavail bool
	}{
		{name: "default key", ns: "minecraft", cm: "server", want: "1.20.4"},
		{name: "branded value", ns: "minecraft", cm: "server", key: "branded", want: "1.20.6"},
		{name: "missing key", ns: "minecraft", cm: "server", key: "nope", unavail: true},
		{name: "missing configmap", ns: "minecraft", cm: "other", unavail: true},
		{name: "missing namespace", ns: "default", cm: "server", unavail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfigMap(cs, tt.ns, tt.cm, tt.key).ReportedVersion(context.Background())
			if tt.unavail {
				assert.ErrorIs(t, err, ErrUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigMapAPIErrorSurfaces(t *testing.T) {
	cs := fake.NewClientset()
	cs.PrependReactor("get", "configmaps", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("apiserver exploded")
	})

	_, err := ConfigMap(cs, "minecraft", "server", "").ReportedVersion(context.Background())
	require.Error(t, err)
	assert.False(t, errorIsUnavailable(err))
	assert.Contains(t, err.Error(), "apiserver exploded")
}

func TestConfigMapDescribe(t *testing.T) {
	assert.Equal(t, "cm://minecraft/server#minecraft-version",
		Describe(ConfigMap(fake.NewClientset(), "minecraft", "server", "")))
}
